package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/preview"
	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/MKhiriev/go-qr-studio/internal/tui"
	"github.com/MKhiriev/go-qr-studio/models"
)

// App wires the editor, its services, and the optional preview server into
// one process lifecycle.
type App struct {
	cfg      *config.StudioConfig
	services *service.Services
	ui       *tui.TUI
	preview  *preview.Server
	log      *logger.Logger
}

// NewApp builds the application from the resolved configuration.
func NewApp(cfg *config.StudioConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}

	services := service.NewServices(cfg, log)

	var (
		previewServer *preview.Server
		previewURL    string
	)
	if cfg.Preview.Enabled {
		handler := preview.NewHandler(services, cfg.Render.Size, log)
		previewServer = preview.NewServer(handler, cfg.Preview, log)
		previewURL = "http://" + cfg.Preview.HTTPAddress + "/"
	}

	ui := tui.New(services, previewURL, buildInfo, log)

	return &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		preview:  previewServer,
		log:      log,
	}, nil
}

// Run starts the preview server when enabled, hands the terminal to the
// editor, and blocks until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	if a.preview != nil {
		a.preview.Run()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			a.preview.Shutdown(shutdownCtx)
		}()
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	return nil
}
