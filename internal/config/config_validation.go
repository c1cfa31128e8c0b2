// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; validation rules will be added as the
// application matures.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *StudioConfig) validate() error {
	if cfg.Export.Dir == "" || cfg.Export.Scale < 1 {
		return ErrInvalidExportConfigs
	}

	if cfg.Render.Size < 1 {
		return ErrInvalidRenderConfigs
	}

	if cfg.Preview.Enabled && cfg.Preview.HTTPAddress == "" {
		return ErrInvalidPreviewConfigs
	}

	// the API key may be empty, assistant features are optional
	if cfg.Assistant.Model == "" || cfg.Assistant.RequestTimeout == 0 {
		return ErrInvalidAssistantConfigs
	}

	return nil
}
