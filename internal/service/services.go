package service

import (
	"github.com/MKhiriev/go-qr-studio/internal/assist"
	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/export"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
	"github.com/MKhiriev/go-qr-studio/internal/render"
	"github.com/MKhiriev/go-qr-studio/internal/utils"
)

type Services struct {
	Session   *EditorSession
	Renderer  render.Renderer
	Exporter  *export.Exporter
	Assistant assist.Assistant
	Images    *utils.ImageFetcher
}

func NewServices(cfg *config.StudioConfig, logger *logger.Logger) *Services {
	renderer := render.NewQRRenderer(logger)

	return &Services{
		Session:   NewEditorSession(),
		Renderer:  renderer,
		Exporter:  export.NewExporter(renderer, cfg.App.Name, cfg.Export.Dir, cfg.Render.Size, cfg.Export.Scale, logger),
		Assistant: assist.NewGeminiAssistant(cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.Assistant.RequestTimeout, logger),
		Images:    utils.NewImageFetcher(cfg.Assistant.RequestTimeout),
	}
}
