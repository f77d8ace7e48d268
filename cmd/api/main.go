package main

import (
	"log"

	"github.com/joho/godotenv"

	"statviz/app"
	"statviz/internal/config"
	"statviz/ui"
)

// Headless JSON API without the gin demo server, for external chart clients.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	engine, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("failed to wire demo engine: %v", err)
	}

	api := ui.NewApp(engine, cfg)
	log.Printf("api listening on :%s", cfg.Server.Port)
	if err := api.ListenAndServe(); err != nil {
		log.Fatalf("api failed: %v", err)
	}
}
