package app

import (
	"context"

	"github.com/kweenDev/alx-files-manager/internal/config"
	"github.com/kweenDev/alx-files-manager/internal/db"
	"github.com/kweenDev/alx-files-manager/internal/logger"
	"github.com/kweenDev/alx-files-manager/internal/redis"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	database, err := db.New(ctx, cfg.MongoURI(), cfg.DBDatabase)
	if err != nil {
		return nil, err
	}

	if err := database.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	logger.Info("document store ready", nil)

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		DB:    database,
		Redis: redisClient,
	}, nil
}
