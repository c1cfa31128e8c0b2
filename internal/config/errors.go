package config

import "errors"

// Validation errors returned by [StudioConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidExportConfigs indicates invalid export settings
	// (for example, an empty export directory or a scale below 1).
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrInvalidRenderConfigs indicates invalid render settings
	// (for example, a non-positive render size).
	ErrInvalidRenderConfigs = errors.New("invalid render configuration")
	// ErrInvalidPreviewConfigs indicates invalid preview server settings
	// (for example, the server enabled without a listen address).
	ErrInvalidPreviewConfigs = errors.New("invalid preview configuration")
	// ErrInvalidAssistantConfigs indicates invalid assistant settings
	// (for example, a missing model name or zero request timeout).
	ErrInvalidAssistantConfigs = errors.New("invalid assistant configuration")
)
