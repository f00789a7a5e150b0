// Package main is the entry point for the chatbot survey API.
package main

import (
	"flag"
	"os"

	"github.com/lmrivero/chatsurvey/internal/bootstrap"
	"github.com/lmrivero/chatsurvey/internal/pkg/logger"
	"github.com/lmrivero/chatsurvey/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, repos, err := bootstrap.SetupDatabase(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up database")
		os.Exit(1)
	}
	defer database.Close()

	deps := bootstrap.BuildDependencies(cfg, database, repos)

	srv := server.New(cfg, deps.Router)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
