package main

import (
	"flag"
	"log"

	"malama_health_backend/internal/app"
	"malama_health_backend/internal/config"
	"malama_health_backend/pkg/logger"
)

// @title Malama Health API
// @version 1.0
// @description Backend API for the Malama Health education platform.
// @BasePath /api
func main() {
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
