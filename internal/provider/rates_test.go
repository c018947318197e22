package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRateSource_Rate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		_, _ = w.Write([]byte(`{"result":"success","rates":{"EUR":0.92,"GBP":0.79}}`))
	}))
	defer srv.Close()

	src := NewHTTPRateSource(RatesConfig{Endpoint: srv.URL})

	rate, err := src.Rate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 0.92, rate, 1e-9)
}

func TestHTTPRateSource_UnknownQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","rates":{"EUR":0.92}}`))
	}))
	defer srv.Close()

	src := NewHTTPRateSource(RatesConfig{Endpoint: srv.URL})

	_, err := src.Rate(context.Background(), "USD", "ZZZ")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestHTTPRateSource_UnknownBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewHTTPRateSource(RatesConfig{Endpoint: srv.URL})

	_, err := src.Rate(context.Background(), "ZZZ", "EUR")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestHTTPRateSource_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewHTTPRateSource(RatesConfig{Endpoint: srv.URL})

	_, err := src.Rate(context.Background(), "USD", "EUR")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPRateSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // closed immediately

	src := NewHTTPRateSource(RatesConfig{Endpoint: srv.URL, Timeout: time.Second})

	_, err := src.Rate(context.Background(), "USD", "EUR")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPRateSource_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	src := NewHTTPRateSource(RatesConfig{Endpoint: srv.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := src.Rate(ctx, "USD", "EUR")
	assert.ErrorIs(t, err, ErrUnavailable)
}
