package main

import (
	"log"

	"github.com/joho/godotenv"

	"statviz/app"
	"statviz/internal"
	"statviz/internal/config"
	"statviz/ui"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := internal.NewDefaultLogger()

	engine, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("failed to wire demo engine: %v", err)
	}

	server := ui.NewServer(engine, cfg, logger)
	if err := server.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
