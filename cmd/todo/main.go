package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/client/cli"
	"github.com/dmitrijs2005/todokeeper/internal/client/config"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := loadConfig()

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		if errors.Is(err, common.ErrCorruptState) {
			fmt.Fprintf(os.Stderr, "The data file is damaged and was left untouched; fix or move it and start again.\n%v\n", err)
			os.Exit(1)
		}
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}

// loadConfig turns the panics raised for bad flags or config files into a
// plain fatal error.
func loadConfig() (cfg *config.Config) {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("config: %v", r)
		}
	}()
	return config.LoadConfig()
}
