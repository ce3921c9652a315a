package main

import (
	"os"

	"github.com/yigit/collegehub/internal/pkg/logger"
	"github.com/yigit/collegehub/internal/server"
)

// @title College Catalog API
// @version 1.0
// @description Read-only catalog of colleges, courses and scholarships with search and currency conversion.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup functions already logged the details
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
