// Package assist provides AI-backed text generation for editor fields:
// vCard bios, email bodies, and Wi-Fi sign slogans.
package assist

import (
	"context"
	"errors"
)

//go:generate mockgen -source=assist.go -destination=../mock/assist.go -package=mock

// Assistant drafts short texts for editor fields.
//
// Implementations must be safe for concurrent use; the TUI issues requests
// from background commands.
type Assistant interface {
	// GenerateBio drafts a short professional bio for a vCard or digital
	// card profile.
	GenerateBio(ctx context.Context, name, jobTitle, company string) (string, error)

	// GenerateEmailBody drafts a concise professional email body for the
	// given topic. recipient may be empty for a generic salutation.
	GenerateEmailBody(ctx context.Context, topic, recipient string) (string, error)

	// GenerateWifiSlogan drafts a one-sentence welcoming slogan for a
	// printed Wi-Fi sign with the given network name.
	GenerateWifiSlogan(ctx context.Context, ssid string) (string, error)
}

// ErrNoAPIKey is returned when assistant features are requested but no API
// key has been configured.
var ErrNoAPIKey = errors.New("API key not found")

// ErrEmptyResponse is returned when the model produced no usable text.
var ErrEmptyResponse = errors.New("assistant returned empty response")
