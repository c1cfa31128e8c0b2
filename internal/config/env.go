// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from APP_/ASSISTANT_/PREVIEW_/EXPORT_/RENDER_
// environment variables via the `env` and `envPrefix` tags declared on
// [StructuredConfig] and its nested groups.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
