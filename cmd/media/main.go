package main

import (
	"fmt"
	"os"

	"github.com/romariotrain/project-media/internal/app"
	"github.com/romariotrain/project-media/internal/config"
	"github.com/romariotrain/project-media/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := logging.New("media", cfg.LogLevel, os.Stderr)
	os.Exit(app.Run("media", logger, newRunner(cfg, logger)))
}
