package main

import (
	"context"
	"log"

	"church-planning-backend/internal/api/routes"
	"church-planning-backend/internal/auth"
	"church-planning-backend/internal/config"
	"church-planning-backend/internal/database"
	"church-planning-backend/internal/logger"
	"church-planning-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "church-planning-backend/docs" // This is needed for swag
)

//	@title			Church Planning Backend API
//	@version		1.0
//	@description	Backend API for church volunteer planning: churches, ministries, departments, members, events and who serves at each event.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Refresh tokens survive restarts when Redis is configured
	var tokens auth.TokenStore
	if cfg.RedisAddr != "" {
		client, err := auth.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logrus.Fatal("Failed to connect to redis:", err)
		}
		defer client.Close()
		tokens = auth.NewRedisTokenStore(client)
		logrus.WithField("addr", cfg.RedisAddr).Info("Using redis refresh token store")
	} else {
		logrus.Warn("REDIS_ADDR not set, refresh tokens are kept in memory")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, routes.Dependencies{
		Tokens:  tokens,
		Metrics: metrics.NewPrometheusRecorder(),
	})
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
