// main.go
package main

import (
	"log"

	"go.uber.org/zap"

	"quickshow-booking/cmd"
	"quickshow-booking/internal/data/remote"
	"quickshow-booking/internal/data/store"
	"quickshow-booking/internal/gateway"
	"quickshow-booking/internal/wire"
	"quickshow-booking/pkg/utils"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("store_backend", config.Store.Backend),
		zap.Bool("prefer_local", config.Remote.PreferLocal),
		zap.Bool("remote_configured", config.Remote.BaseURL != ""),
	)

	// Open the local fallback mirror
	mirror, err := openStore(config)
	if err != nil {
		logger.Fatal("Failed to open mirror store", zap.Error(err))
	}
	defer mirror.Close()

	logger.Info("Mirror store ready", zap.String("backend", config.Store.Backend))

	// Remote authority client; nil forces local mode
	var remoteAPI gateway.RemoteAPI
	if config.Remote.BaseURL != "" {
		remoteAPI = remote.NewClient(config.Remote.BaseURL, config.Remote.Timeout)
	}

	gw := gateway.New(remoteAPI, mirror, config.Remote.PreferLocal, logger)

	// Wire all dependencies
	app := wire.Wiring(gw, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func openStore(config *utils.Config) (store.Store, error) {
	switch config.Store.Backend {
	case "redis":
		return store.NewRedis(config.Store.Redis)
	case "postgres":
		return store.NewPostgres(config.Store.Database)
	default:
		return store.NewMemory(), nil
	}
}
