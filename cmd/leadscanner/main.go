package main

import (
	"context"
	"os"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/app"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/config"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)

	if err := newRootCmd(application.Run).ExecuteContext(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
