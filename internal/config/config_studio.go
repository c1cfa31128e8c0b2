package config

import (
	"fmt"
	"time"
)

// StudioApp holds application-level settings used by the TUI runtime.
type StudioApp struct {
	// Name is the application name used in export file names.
	Name string
	// Version is the application version shown in the status line.
	Version string
}

// StudioAssistant holds the Gemini assistant settings used by the TUI runtime.
type StudioAssistant struct {
	// APIKey is the Gemini API key; empty disables assistant features.
	APIKey string
	// Model is the Gemini model identifier.
	Model string
	// RequestTimeout is the per-request deadline for assistant calls.
	RequestTimeout time.Duration
}

// StudioPreview holds the preview server settings used by the TUI runtime.
type StudioPreview struct {
	// HTTPAddress is the listen address of the preview server.
	HTTPAddress string
	// Enabled controls whether the preview server is started.
	Enabled bool
}

// StudioExport holds the export settings used by the TUI runtime.
type StudioExport struct {
	// Dir is the directory exported files are written to.
	Dir string
	// Scale is the PNG export pixel multiplier.
	Scale int
}

// StudioRender holds the render settings used by the TUI runtime.
type StudioRender struct {
	// Size is the base QR image edge length in pixels.
	Size int
}

// StudioConfig is the top-level runtime configuration assembled from
// [StructuredConfig].
type StudioConfig struct {
	// App contains application-level settings.
	App StudioApp
	// Assistant contains Gemini assistant settings.
	Assistant StudioAssistant
	// Preview contains preview server settings.
	Preview StudioPreview
	// Export contains file export settings.
	Export StudioExport
	// Render contains QR render settings.
	Render StudioRender
}

// GetStudioConfig builds and validates the runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the studio runtime, and validates the resulting [StudioConfig].
func GetStudioConfig() (*StudioConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	studioCfg := &StudioConfig{
		App: StudioApp{
			Name:    cfg.App.Name,
			Version: cfg.App.Version,
		},
		Assistant: StudioAssistant{
			APIKey:         cfg.Assistant.APIKey,
			Model:          cfg.Assistant.Model,
			RequestTimeout: cfg.Assistant.RequestTimeout,
		},
		Preview: StudioPreview{
			HTTPAddress: cfg.Preview.HTTPAddress,
			Enabled:     cfg.Preview.Enabled,
		},
		Export: StudioExport{
			Dir:   cfg.Export.Dir,
			Scale: cfg.Export.Scale,
		},
		Render: StudioRender{
			Size: cfg.Render.Size,
		},
	}

	return studioCfg, studioCfg.validate()
}
