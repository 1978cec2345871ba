package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gridtactics/tactics/internal/api"
	"github.com/gridtactics/tactics/internal/config"
	"github.com/gridtactics/tactics/internal/constants"
	"github.com/gridtactics/tactics/internal/logging"
	"github.com/gridtactics/tactics/internal/storage"
)

func main() {
	// Load the server configuration file. The path may be provided via
	// TACTICS_CONFIG or defaults to ./tactics_config.json in the
	// current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./tactics_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid tactics configuration", err, logging.Fields{"config_path": configPath, "hint": "create a tactics_config.json with optional keys: server.address, action_timeout_seconds, death_choice_policy, rng_seed, stats"})
	}

	// Allow the DB path to be configured via TACTICS_DB. Default to a
	// data/ directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/tactics.db"
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	handler := api.NewMatchHandler(repo, cfg.ActionTimeout, cfg.DeathChoicePolicy, cfg.Stats, cfg.RNGSeed)

	startTimeoutScanner(repo)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.POST(constants.RouteMatches, handler.CreateMatch)
		apiRoutes.POST(constants.RouteMatchesJoin, handler.JoinMatch)
		apiRoutes.GET(constants.RouteMatchByCode, handler.GetMatch)
		apiRoutes.POST(constants.RouteMatchAction, handler.SubmitAction)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
