package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/you/currencysvc/internal/app"
	"github.com/you/currencysvc/internal/config"
)

func main() {
	// .env is optional; config falls back to real environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
