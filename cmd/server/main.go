package main

import (
	"log"
	"net/http"

	_ "resepku/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"resepku/internal/auth"
	"resepku/internal/cache"
	"resepku/internal/config"
	"resepku/internal/db"
	"resepku/internal/handler"
	"resepku/internal/model"
	"resepku/internal/repository"
	"resepku/internal/router"
	"resepku/internal/service"
	"resepku/internal/storage"
)

// @title Resepku API
// @version 1.0
// @description Recipe sharing API with JWT authentication, publishing, and favorites.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Recipe{},
		&model.SharedRecipe{},
		&model.Favorite{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploadStore := storage.NewLocalStore(cfg.UploadDir)
	if err := uploadStore.EnsureDirs(); err != nil {
		log.Fatalf("upload dirs: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB, uploadStore.Prefix())
	shareRepo := repository.NewShareRepository(gormDB, uploadStore.Prefix())
	favoriteRepo := repository.NewFavoriteRepository(gormDB, uploadStore.Prefix())

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	handleGen := service.NewHandleGenerator(userRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, handleGen)
	userService := service.NewUserService(userRepo, cacheClient)
	recipeService := service.NewRecipeService(recipeRepo, shareRepo, favoriteRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, jwtService)
	userHandler := handler.NewUserHandler(userService, uploadStore)
	recipeHandler := handler.NewRecipeHandler(recipeService, uploadStore)
	shareHandler := handler.NewShareHandler(recipeService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		recipeHandler,
		shareHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
