package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTranslateEndpoint is the keyless Google Translate web endpoint.
const DefaultTranslateEndpoint = "https://translate.googleapis.com/translate_a/single"

// HTTPTranslator translates text through the translate_a/single endpoint
// with automatic source language detection.
type HTTPTranslator struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// TranslateConfig configures an HTTPTranslator.
type TranslateConfig struct {
	Endpoint string        // empty = DefaultTranslateEndpoint
	Timeout  time.Duration // empty = 10s
	Logger   *slog.Logger  // nil = discard
}

// NewHTTPTranslator creates a translator against the configured endpoint.
func NewHTTPTranslator(cfg TranslateConfig) *HTTPTranslator {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultTranslateEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &HTTPTranslator{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   cfg.Logger,
	}
}

// Translate requests a translation and concatenates the sentence segments
// of the response. The response shape is a nested array:
// [[["hola","hello",...], ...], ...].
func (t *HTTPTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		return "", fmt.Errorf("%w: %s", ErrUnknownLanguage, targetLang)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: translate API returned %d", ErrUnavailable, resp.StatusCode)
	}

	translated, err := parseTranslateBody(body)
	if err != nil {
		return "", err
	}

	t.logger.Debug("translated text", "target", targetLang, "chars", len(text))
	return translated, nil
}

// parseTranslateBody extracts the translated segments from the nested
// array response.
func parseTranslateBody(body []byte) (string, error) {
	var outer []any
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(outer) == 0 {
		return "", fmt.Errorf("%w: empty translate response", ErrUnavailable)
	}

	segments, ok := outer[0].([]any)
	if !ok {
		return "", fmt.Errorf("%w: unexpected translate response shape", ErrUnavailable)
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: empty translation", ErrUnavailable)
	}
	return sb.String(), nil
}
