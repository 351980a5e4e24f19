package service

import (
	"github.com/MKhiriev/go-user-management/internal/config"
	"github.com/MKhiriev/go-user-management/internal/logger"
	"github.com/MKhiriev/go-user-management/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(users store.UserRepository, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(cfg, logger),
		UserService: NewUserService(users, logger),
	}
}
