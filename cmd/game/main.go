package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/Garsondee/Cannons/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var configPath string
	var debug bool
	flag.StringVar(&configPath, "config", os.Getenv("CANNONS_CONFIG"), "path to a YAML config file")
	flag.BoolVar(&debug, "debug", false, "log every simulation event")
	flag.Parse()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	assets, err := game.LoadAssets(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetTPS(cfg.FPS)
	logger.Info("starting", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight, "config", configPath)
	if err := ebiten.RunGame(game.New(cfg, assets, logger)); err != nil {
		log.Fatal(err)
	}
}
