package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/ytget/soundboard/internal/app"
	"github.com/ytget/soundboard/internal/audio"
	"github.com/ytget/soundboard/internal/cli"
	"github.com/ytget/soundboard/internal/config"
	"github.com/ytget/soundboard/internal/hotkey"
	"github.com/ytget/soundboard/internal/logging"
	"github.com/ytget/soundboard/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logging.Setup(cfg.LogLevel, nil)

	// The fyne app is created on first use so list commands stay cheap.
	var fyneApp fyne.App
	getApp := func() fyne.App {
		if fyneApp == nil {
			fyneApp = fyneapp.NewWithID(cfg.AppID)
		}
		return fyneApp
	}

	deps := &cli.Dependencies{
		Config: cfg,
		Store: func() *config.Store {
			return config.NewStore(getApp())
		},
		Run: func(ctx context.Context) error {
			backend := audio.NewEbitenBackend(cfg.SampleRate)
			application := app.New(cfg, getApp(), backend, hotkey.NewGlobal())
			application.Run(ctx)
			return nil
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(deps).ExecuteContext(ctx)
}
