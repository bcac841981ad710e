package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fatmagorgulu/conversation-connector/internal/config"
	"github.com/fatmagorgulu/conversation-connector/internal/handler"
	"github.com/fatmagorgulu/conversation-connector/internal/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	r := handler.New()
	logger.GetLogger().Info("starting normalizer server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.GetLogger().Fatal("server stopped", zap.Error(err))
	}
}
