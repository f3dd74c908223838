package main

import (
	"log"
	"net/http"

	"kunstbeheer/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"kunstbeheer/internal/auth"
	"kunstbeheer/internal/cache"
	"kunstbeheer/internal/config"
	"kunstbeheer/internal/db"
	"kunstbeheer/internal/handler"
	"kunstbeheer/internal/mail"
	"kunstbeheer/internal/model"
	"kunstbeheer/internal/repository"
	"kunstbeheer/internal/router"
	"kunstbeheer/internal/service"
)

// @title Kunstbeheer API
// @version 1.0
// @description Inventory management API for an art collection: artists, artworks, locations, users and reports, with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Artist{},
		&model.Location{},
		&model.ArtworkType{},
		&model.Artwork{},
		&model.ArtworkImage{},
		&model.ArtworkAttachment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	mailer := mail.NewSendgridMailer(cfg.SendgridAPIKey, cfg.MailFrom, cfg.FrontendURL)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	artistRepo := repository.NewArtistRepository(gormDB)
	locationRepo := repository.NewLocationRepository(gormDB)
	typeRepo := repository.NewArtworkTypeRepository(gormDB)
	artworkRepo := repository.NewArtworkRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	notifier := service.NewNotifier(userRepo, mailer)
	authService := service.NewAuthService(userRepo, jwtService, mailer)
	userService := service.NewUserService(userRepo)
	artistService := service.NewArtistService(artistRepo, notifier)
	locationService := service.NewLocationService(locationRepo, notifier)
	typeService := service.NewArtworkTypeService(typeRepo)
	artworkService := service.NewArtworkService(artworkRepo, cacheClient, notifier)
	reportService := service.NewReportService(artworkRepo, artistRepo, locationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, authService)
	artistHandler := handler.NewArtistHandler(artistService)
	artworkHandler := handler.NewArtworkHandler(artworkService)
	locationHandler := handler.NewLocationHandler(locationService)
	typeHandler := handler.NewArtworkTypeHandler(typeService)
	reportHandler := handler.NewReportHandler(reportService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		artistHandler,
		artworkHandler,
		locationHandler,
		typeHandler,
		reportHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
