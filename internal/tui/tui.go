package tui

import (
	"context"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/service"
	"github.com/MKhiriev/go-qr-studio/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive editor. It owns the terminal for the lifetime
// of one Run call.
type TUI struct {
	services   *service.Services
	previewURL string
	buildInfo  models.AppBuildInfo
	log        *logger.Logger
}

// New creates the editor over the given services. previewURL is shown on
// the preview hotkey; pass "" when the preview server is disabled.
func New(services *service.Services, previewURL string, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:   services,
		previewURL: previewURL,
		buildInfo:  buildInfo,
		log:        log,
	}
}

// Run starts the editor loop and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newStudioModel(ctx, t.services, t.previewURL, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.log.Error().Err(err).Msg("editor loop failed")
		return err
	}
	return nil
}
