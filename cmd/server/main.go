package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/server"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg, os.Stdout)

	if err != nil {
		log.Fatalf("%v", err)
	}

	runErr := app.Run(ctx)

	if err := app.Close(); err != nil {
		log.Printf("close error: %v", err)
	}

	if runErr != nil {
		os.Exit(1)
	}
}
