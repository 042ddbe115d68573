package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/userdash/internal/devserver"
	"github.com/dmitrijs2005/userdash/internal/devserver/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := devserver.NewApp(cfg).Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
