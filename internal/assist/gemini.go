package assist

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/MKhiriev/go-qr-studio/internal/logger"
)

// GeminiAssistant implements [Assistant] on top of Google's Gemini API.
//
// The underlying client is created lazily on first use so that the studio
// can start without an API key; requests fail with [ErrNoAPIKey] until one
// is configured.
type GeminiAssistant struct {
	apiKey  string
	model   string
	timeout time.Duration
	log     *logger.Logger

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiAssistant creates a Gemini-backed assistant.
// apiKey may be empty; in that case every request returns [ErrNoAPIKey].
// timeout bounds each request; a non-positive value falls back to 30s.
func NewGeminiAssistant(apiKey, model string, timeout time.Duration, log *logger.Logger) *GeminiAssistant {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GeminiAssistant{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
		log:     log,
	}
}

// GenerateBio implements [Assistant.GenerateBio].
func (a *GeminiAssistant) GenerateBio(ctx context.Context, name, jobTitle, company string) (string, error) {
	return a.generate(ctx, bioPrompt(name, jobTitle, company))
}

// GenerateEmailBody implements [Assistant.GenerateEmailBody].
func (a *GeminiAssistant) GenerateEmailBody(ctx context.Context, topic, recipient string) (string, error) {
	return a.generate(ctx, emailBodyPrompt(topic, recipient))
}

// GenerateWifiSlogan implements [Assistant.GenerateWifiSlogan].
func (a *GeminiAssistant) GenerateWifiSlogan(ctx context.Context, ssid string) (string, error) {
	return a.generate(ctx, wifiSloganPrompt(ssid))
}

func (a *GeminiAssistant) generate(ctx context.Context, prompt string) (string, error) {
	client, err := a.getClient(ctx)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		a.log.Error().Err(err).Str("model", a.model).Msg("assistant request failed")
		return "", fmt.Errorf("error generating text: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func (a *GeminiAssistant) getClient(ctx context.Context) (*genai.Client, error) {
	if a.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: a.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	a.client = client
	return client, nil
}
