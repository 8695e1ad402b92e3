package main

import (
	"context"
	"log"
	"log/slog"

	"fileList/internal/app"
	"fileList/internal/config"
	"fileList/internal/logger"
)

func main() {
	closer, err := logger.Init("logs", slog.LevelInfo)
	if err != nil {
		log.Fatal("Error opening log:", err)
	}
	defer closer.Close()

	cfg, err := config.LoadConfig(config.DefaultPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	if err := app.Build(cfg, cfg.Workbook.Path); err != nil {
		log.Fatal(err)
	}
	if err := app.Inject(context.Background(), cfg, cfg.Workbook.Path); err != nil {
		log.Fatal(err)
	}
}
