// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// qr-studio application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application name
	// and version.
	App App `envPrefix:"APP_"`

	// Assistant holds settings for the Gemini text assistant.
	Assistant Assistant `envPrefix:"ASSISTANT_"`

	// Preview holds settings for the local HTTP preview server that serves
	// the generated landing page and QR image to a phone on the same network.
	Preview Preview `envPrefix:"PREVIEW_"`

	// Export holds settings controlling where and how QR images and landing
	// pages are written to disk.
	Export Export `envPrefix:"EXPORT_"`

	// Render holds settings for the on-screen QR rendering.
	Render Render `envPrefix:"RENDER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the application name used in export file names
	// (e.g. "qr-studio" produces "qr-studio-<timestamp>.png").
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the TUI status line.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Assistant holds configuration for the Gemini text assistant that drafts
// bios, email bodies, and Wi-Fi sign texts.
type Assistant struct {
	// APIKey is the Gemini API key. When empty, assistant features are
	// disabled and the TUI reports that the key is missing.
	// Env: ASSISTANT_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the Gemini model identifier used for text generation
	// (e.g. "gemini-2.5-flash").
	// Env: ASSISTANT_MODEL
	Model string `env:"MODEL"`

	// RequestTimeout is the maximum duration allowed for a single assistant
	// request before it is cancelled (e.g. "30s", "1m").
	// Env: ASSISTANT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Preview holds network settings for the local preview server.
type Preview struct {
	// HTTPAddress is the TCP address on which the preview server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: PREVIEW_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Enabled controls whether the preview server is started alongside
	// the TUI.
	// Env: PREVIEW_ENABLED
	Enabled bool `env:"ENABLED"`
}

// Export holds file export settings.
type Export struct {
	// Dir is the directory where exported PNG, SVG, and HTML files are
	// written. Defaults to the current working directory.
	// Env: EXPORT_DIR
	Dir string `env:"DIR"`

	// Scale is the pixel multiplier applied to the base render size when
	// exporting PNG images, so exports stay crisp when printed.
	// Env: EXPORT_SCALE
	Scale int `env:"SCALE"`
}

// Render holds on-screen QR rendering settings.
type Render struct {
	// Size is the base edge length of the rendered QR image in pixels.
	// Env: RENDER_SIZE
	Size int `env:"SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
