// shapeviewer shows the generated shapes and moves one of them along the
// configured control path.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/parashape/internal/config"
	"github.com/Faultbox/parashape/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting shapeviewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("shapes", len(cfg.Scene.Shapes)),
		zap.String("mover", cfg.Scene.Mover),
	)

	v, err := newViewer(cfg)
	if err != nil {
		logger.Error("failed to set up scene", zap.Error(err))
		logger.Close()
		os.Exit(1)
	}

	v.run()
	v.destroy()

	logger.Info("shapeviewer shutdown complete")
	logger.Close()
}
