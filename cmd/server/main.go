package main

import (
	"context"
	"log"

	"github.com/Dev-Puneet-V/xianinfotech/internal/server"
	"github.com/Dev-Puneet-V/xianinfotech/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
