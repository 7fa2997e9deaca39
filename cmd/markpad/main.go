package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/markpad/internal/cli"
	"github.com/dmitrijs2005/markpad/internal/config"
	"github.com/dmitrijs2005/markpad/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "markpad: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "markpad: %v\n", err)
		os.Exit(1)
	}
}
