// Package provider holds the external collaborator contracts of the
// resolution pipeline: live currency exchange rates and text translation.
// The core calls these through narrow interfaces; retry and backoff policy
// belongs to implementations, never to the callers.
package provider

import (
	"context"
	"errors"
)

// Sentinel errors implementations wrap so resolvers can classify failures
// with errors.Is.
var (
	// ErrUnavailable indicates the provider could not be reached or
	// returned an unusable response.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrUnknownCurrency indicates the provider does not quote the
	// requested currency pair.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnknownLanguage indicates the provider does not support the
	// requested target language.
	ErrUnknownLanguage = errors.New("unknown language")
)

// RateSource supplies live exchange rates. Implementations may block on
// network I/O and must honor ctx cancellation.
type RateSource interface {
	// Rate returns the multiplicative rate from base to quote
	// (both upper-case ISO 4217 codes).
	Rate(ctx context.Context, base, quote string) (float64, error)
}

// Translator translates text into a target language. The returned text is
// opaque to callers and passed through unchanged.
type Translator interface {
	// Translate translates text into the language given by its ISO 639-1
	// code.
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
