package service

import (
	"context"

	"github.com/MKhiriev/go-user-management/models"
)

type AuthService interface {
	// Login verifies the supplied credential pair against the configured
	// one. Returns ErrWrongCredentials on any mismatch, without detail.
	Login(ctx context.Context, login models.LoginRequest) error

	// CreateToken issues a signed JWT whose subject is the given username.
	CreateToken(ctx context.Context, username string) (models.Token, error)

	// ParseToken validates a raw JWT string and returns its claims.
	// Any validation failure yields ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetAll(ctx context.Context) []models.User
	GetByID(ctx context.Context, id int) (models.User, error)

	// Create validates the candidate and stores it under a fresh id.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update validates the candidate against all users except the one with
	// the given id, then overwrites that record's username and email.
	Update(ctx context.Context, id int, user models.User) error

	Delete(ctx context.Context, id int) error
}
