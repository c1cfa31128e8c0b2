package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON must be valid for time.ParseDuration (string, e.g. "30s").
	jsonBody := `{
		"app": {
			"name": "qr-studio",
			"version": "1.2.3"
		},
		"assistant": {
			"api_key": "gemini_secret",
			"model": "gemini-2.5-flash",
			"request_timeout": "30s"
		},
		"preview": {
			"http_address": "localhost:8080",
			"enabled": true
		},
		"export": {
			"dir": "/var/exports",
			"scale": 4
		},
		"render": {
			"size": 512
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "qr-studio", cfg.App.Name)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "gemini_secret", cfg.Assistant.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Assistant.Model)
	assert.Equal(t, 30*time.Second, cfg.Assistant.RequestTimeout)

	assert.Equal(t, "localhost:8080", cfg.Preview.HTTPAddress)
	assert.True(t, cfg.Preview.Enabled)

	assert.Equal(t, "/var/exports", cfg.Export.Dir)
	assert.Equal(t, 4, cfg.Export.Scale)

	assert.Equal(t, 512, cfg.Render.Size)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// request_timeout should be a duration string; make it invalid.
	jsonBody := `{
		"assistant": { "request_timeout": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"preview": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Preview.HTTPAddress)
	assert.False(t, cfg.Preview.Enabled)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Assistant{}, cfg.Assistant)
	assert.Equal(t, Export{}, cfg.Export)
	assert.Equal(t, Render{}, cfg.Render)
}
