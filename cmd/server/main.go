package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/legalease/legallite/internal/server"
	"github.com/legalease/legallite/internal/server/config"
)

func main() {

	// a missing .env is fine; real deployments pass env directly
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
