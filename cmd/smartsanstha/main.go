package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/api"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/config"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/constants"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/engine"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/live"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/version"
)

func main() {
	cfg := loadConfigOrExit()
	pack := loadPackOrExit(cfg.ScenarioPack)
	if err := config.ValidatePack(pack); err != nil {
		logging.Fatal("Invalid scenario pack", err, logging.Fields{constants.LogFieldPack: pack.Name})
	}
	repo := createRepositoryOrExit(cfg.Database)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startPurgeScanner(ctx, repo, cfg.PurgeInterval, cfg.SessionTTL)

	gin.SetMode(gin.ReleaseMode)
	handler := api.NewSessionHandler(repo, pack, live.NewHub(), engine.DefaultRoller)
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server shutdown failed", err, nil)
		}
	}()

	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr:  cfg.ServerAddress,
		constants.LogFieldPack:  pack.Name,
		constants.LogFieldCount: pack.Len(),
		"version":               version.Current().String(),
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal("Failed to start server", err, nil)
	}
	logging.Info("Server stopped", nil)
}
