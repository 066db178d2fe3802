package main

import (
	"context"
	"log"
	"os"

	"github.com/mwhitley/capquiz/internal/cli"
	"github.com/mwhitley/capquiz/internal/config"
	"github.com/mwhitley/capquiz/internal/repository"
	"github.com/mwhitley/capquiz/internal/service"
	"github.com/mwhitley/capquiz/internal/storage/cache"
	"github.com/mwhitley/capquiz/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db)

	cache := cache.NewCache()
	services := service.InitServices(repos, cache, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	services.EnsureLoaded(ctx, cfg.Data.File)
	cancel()

	app := cli.New(os.Stdin, os.Stdout, services, cfg.App.Timeout)
	if err := app.Run(); err != nil {
		logger.Fatal("app stopped", zap.Error(err))
	}
}
