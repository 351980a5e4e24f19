package main

import (
	"fmt"

	"github.com/MKhiriev/go-user-management/internal/config"
	myHTTP "github.com/MKhiriev/go-user-management/internal/handler/http"
	"github.com/MKhiriev/go-user-management/internal/logger"
	"github.com/MKhiriev/go-user-management/internal/server"
	"github.com/MKhiriev/go-user-management/internal/service"
	"github.com/MKhiriev/go-user-management/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-management-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	users := store.NewUserRepository(log)
	services := service.NewServices(users, cfg.App, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
