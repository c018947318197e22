package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultRatesEndpoint is the keyless open.er-api.com latest-rates API.
const DefaultRatesEndpoint = "https://open.er-api.com/v6/latest"

// HTTPRateSource fetches exchange rates over HTTP. Each Rate call issues
// one request; callers that need caching wrap this type.
type HTTPRateSource struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// RatesConfig configures an HTTPRateSource.
type RatesConfig struct {
	Endpoint string        // empty = DefaultRatesEndpoint
	Timeout  time.Duration // empty = 10s
	Logger   *slog.Logger  // nil = discard
}

// NewHTTPRateSource creates a rate source against the configured endpoint.
func NewHTTPRateSource(cfg RatesConfig) *HTTPRateSource {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultRatesEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &HTTPRateSource{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   cfg.Logger,
	}
}

// ratesResponse is the open.er-api.com response body.
type ratesResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// Rate fetches the latest base table and picks the quote entry.
func (s *HTTPRateSource) Rate(ctx context.Context, base, quote string) (float64, error) {
	url := fmt.Sprintf("%s/%s", s.endpoint, strings.ToUpper(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, base)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: rate API returned %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed ratesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if parsed.Result != "success" {
		return 0, fmt.Errorf("%w: rate API result %q", ErrUnavailable, parsed.Result)
	}

	rate, ok := parsed.Rates[strings.ToUpper(quote)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, quote)
	}

	s.logger.Debug("fetched exchange rate", "base", base, "quote", quote, "rate", rate)
	return rate, nil
}
