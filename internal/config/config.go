package config

import (
	"log"

	"go.uber.org/zap"
)

// Logger is a no-op until InitLogger runs, so packages may log unconditionally.
var Logger = zap.NewNop()

func InitLogger() {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	Logger = l
	Logger.Info("Logger initialized")
}
