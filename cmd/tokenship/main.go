package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Bessima/token-shipping/internal/config"
	"github.com/Bessima/token-shipping/internal/config/db"
	"github.com/Bessima/token-shipping/internal/handlers"
	"github.com/Bessima/token-shipping/internal/manifest"
	"github.com/Bessima/token-shipping/internal/middlewares/logger"
	"github.com/Bessima/token-shipping/internal/repository"
	"github.com/Bessima/token-shipping/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		logger.Log.Error("tokenship stopped", zap.Error(err))
		_ = logger.Log.Sync()
		panic(err)
	}
}

func run() error {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conf := config.InitConfig()
	if err := logger.Initialize(conf.LogLevel); err != nil {
		logger.Log.Warn(err.Error())
	}
	defer logger.Log.Sync()

	storage, closeStorage, err := openStorage(rootCtx, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	store, err := service.NewShipmentStore(rootCtx, storage)
	if err != nil {
		return err
	}
	logger.Log.Info("shipments loaded", zap.Int("count", store.Len()))

	gate, err := service.NewAccessGate(conf.RolePasswords())
	if err != nil {
		return err
	}

	renderer := manifest.NewRenderer(conf.ManifestDir, manifest.WithAssetsDir(conf.AssetsDir))
	jwtConfig := &handlers.JWTConfig{
		SecretKey:      conf.JWTSecret,
		AccessTokenTTL: conf.SessionTTL,
	}

	serverService := service.NewServerService(rootCtx, conf.Address)
	serverService.SetRouter(
		handlers.NewAuthHandler(jwtConfig, gate),
		handlers.NewShipmentsHandler(service.NewShipmentService(store), renderer),
	)

	serverErr := make(chan error, 1)
	logger.Log.Info("Running Server on", zap.String("address", conf.Address))
	go serverService.RunServer(&serverErr)

	select {
	case <-rootCtx.Done():
		logger.Log.Info("Received shutdown signal, shutting down.")
	case err = <-serverErr:
		if err != nil {
			logger.Log.Error("Server error", zap.Error(err))
		}
	}

	if shutdownErr := serverService.Shutdown(); shutdownErr != nil {
		logger.Log.Error("Server shutdown error", zap.Error(shutdownErr))
	}

	return err
}

func openStorage(ctx context.Context, conf *config.Config) (repository.ShipmentStorageRepositoryI, func(), error) {
	if !conf.UsesDatabase() {
		logger.Log.Info("Using shipments file", zap.String("path", conf.ShipmentsFile))
		return repository.NewFileRepository(conf.ShipmentsFile), func() {}, nil
	}

	dbObj, err := db.NewDB(ctx, conf.DatabaseDNS)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	logger.Log.Info("Using PostgreSQL shipments storage")
	return repository.NewPostgresRepository(dbObj), dbObj.Close, nil
}
