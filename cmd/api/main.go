package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ssgi/placementms/internal/pkg/logger"
	"github.com/ssgi/placementms/internal/server"
)

// @title Placement Management API
// @version 1.0
// @description API for the SSGI placement cell: student profiles, admin verification, company drives and notifications

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Optional .env for local development; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment variables")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
