package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numo-sh/numo/internal/engine"
	"github.com/numo-sh/numo/internal/provider"
	"github.com/numo-sh/numo/internal/testutil"
)

type staticRates struct{}

func (staticRates) Rate(_ context.Context, _, _ string) (float64, error) {
	return 0.5, nil
}

type failingTranslator struct{}

func (failingTranslator) Translate(context.Context, string, string) (string, error) {
	return "", provider.ErrUnavailable
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng := engine.New(engine.Options{
		Rates:      staticRates{},
		Translator: failingTranslator{},
		Logger:     testutil.NewTestLogger(t),
	})
	return NewServer(Config{Engine: eng, Logger: testutil.NewTestLogger(t)})
}

func TestHandleCalculate(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	body := `{"expressions": ["x = 5", "x + 1", "1 / 0", "10 usd to eur"]}`
	resp, err := http.Post(srv.URL+"/api/v1/calculate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed calculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.Len(t, parsed.Results, 4)

	assert.True(t, parsed.Results[0].OK)
	assert.Equal(t, "5", parsed.Results[0].Output)

	assert.True(t, parsed.Results[1].OK)
	assert.Equal(t, "6", parsed.Results[1].Output)

	assert.False(t, parsed.Results[2].OK)
	assert.Equal(t, "division-by-zero", parsed.Results[2].Kind)

	assert.True(t, parsed.Results[3].OK)
	assert.Equal(t, "5.00 EUR", parsed.Results[3].Output)
}

func TestHandleCalculate_RequestsAreIsolated(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	post := func(body string) calculateResponse {
		resp, err := http.Post(srv.URL+"/api/v1/calculate", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		var parsed calculateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		return parsed
	}

	first := post(`{"expressions": ["x = 5"]}`)
	require.True(t, first.Results[0].OK)

	// A later request must not see the earlier request's variables.
	second := post(`{"expressions": ["x + 1"]}`)
	require.False(t, second.Results[0].OK)
	assert.Equal(t, "unresolved-variable", second.Results[0].Kind)
}

func TestHandleCalculate_BadRequests(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	for _, body := range []string{``, `{}`, `not json`, `{"expressions": []}`} {
		resp, err := http.Post(srv.URL+"/api/v1/calculate", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
