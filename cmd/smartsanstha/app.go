package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/config"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/storage"
)

const defaultConfigPath = "./smartsanstha.json"

// loadConfigOrExit reads the config file named by SMARTSANSTHA_CONFIG (or
// the default path) and applies environment overrides. A missing default
// file is not an error.
func loadConfigOrExit() *config.LoadedConfig {
	path := os.Getenv(constants.EnvConfigPath)
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	cfg, err := config.LoadConfig(path)
	switch {
	case err == nil:
		logging.Info("Configuration loaded", logging.Fields{constants.LogFieldPath: path})
	case !explicit && errors.Is(err, fs.ErrNotExist):
		cfg = config.Defaults()
	default:
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{constants.LogFieldPath: path, "hint": "see smartsanstha.example.json"})
	}
	if err := config.ApplyEnv(cfg); err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}
	return cfg
}

func loadPackOrExit(path string) *game.Pack {
	if path == "" {
		return game.BuiltinPack()
	}
	pack, err := config.LoadPack(path)
	if err != nil {
		logging.Fatal("Failed to load scenario pack", err, logging.Fields{constants.LogFieldPath: path})
	}
	return pack
}

func createRepositoryOrExit(dsn string) storage.Repository {
	db, err := storage.OpenAndMigrate(dsn)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldPath: dsn})
	}
	return storage.NewSQLiteRepository(db)
}
