package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kweenDev/alx-files-manager/internal/api"
	"github.com/kweenDev/alx-files-manager/internal/auth"
	"github.com/kweenDev/alx-files-manager/internal/config"
	"github.com/kweenDev/alx-files-manager/internal/files"
	"github.com/kweenDev/alx-files-manager/internal/middleware"
	"github.com/kweenDev/alx-files-manager/internal/session"
	"github.com/kweenDev/alx-files-manager/internal/user"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)

	userService := user.NewService(user.NewMongoRepository(infra.DB))
	authService := auth.NewService(userService, sessionStore)
	fileService := files.NewService(
		files.NewMongoRepository(infra.DB),
		files.NewDiskStorage(cfg.FolderPath),
	)

	handler := api.NewHandler(
		authService,
		userService,
		fileService,
		infra.DB,
		infra.Redis,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	handler.RegisterRoutes(router, middleware.RequireAuth(authService))

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.DB.Close(context.Background())
	}, nil
}
