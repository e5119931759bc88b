package main

import (
	"log"

	"github.com/Kaduh15/api-consumption-measurement/config"
	"github.com/Kaduh15/api-consumption-measurement/database"
	"github.com/Kaduh15/api-consumption-measurement/gemini"
	"github.com/Kaduh15/api-consumption-measurement/handlers"
	"github.com/Kaduh15/api-consumption-measurement/middleware"
	"github.com/Kaduh15/api-consumption-measurement/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandler(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	h := handlers.New(cfg, store.New(db), gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, logger), logger)
	h.RegisterRoutes(r)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
