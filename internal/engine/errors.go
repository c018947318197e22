package engine

import (
	"errors"

	"github.com/numo-sh/numo/internal/provider"
	"github.com/numo-sh/numo/pkg/expr"
	"github.com/numo-sh/numo/pkg/units"
)

// UnknownUnitError reports a conversion request naming a unit the table
// does not know.
type UnknownUnitError struct {
	Unit string
}

func (e *UnknownUnitError) Error() string {
	return "unknown unit " + e.Unit
}

// Failure kind identifiers, used by the history store and the HTTP API to
// classify failed results without parsing messages.
const (
	KindNone                 = ""
	KindNoMatch              = "no-match"
	KindUnresolvedVariable   = "unresolved-variable"
	KindDivisionByZero       = "division-by-zero"
	KindInvalidFunctionArgs  = "invalid-function-arguments"
	KindNotFinite            = "not-finite"
	KindUnknownUnit          = "unknown-unit"
	KindDimensionMismatch    = "dimension-mismatch"
	KindUnknownCurrency      = "unknown-currency"
	KindCurrencyUnavailable  = "currency-unavailable"
	KindUnknownLanguage      = "unknown-language"
	KindTranslateUnavailable = "translation-unavailable"
	KindFailed               = "failed" // anything not classified above
)

// FailureKind maps a Result error to its taxonomy identifier.
func FailureKind(err error) string {
	if err == nil {
		return KindNone
	}

	var (
		unresolved *expr.UnresolvedVariableError
		divZero    *expr.DivisionByZeroError
		funcArgs   *expr.FunctionArgError
		notFinite  *expr.NotFiniteError
		unknown    *UnknownUnitError
		mismatch   *units.DimensionMismatchError
	)

	switch {
	case errors.Is(err, ErrNoMatch):
		return KindNoMatch
	case errors.As(err, &unresolved):
		return KindUnresolvedVariable
	case errors.As(err, &divZero):
		return KindDivisionByZero
	case errors.As(err, &funcArgs):
		return KindInvalidFunctionArgs
	case errors.As(err, &notFinite):
		return KindNotFinite
	case errors.As(err, &unknown):
		return KindUnknownUnit
	case errors.As(err, &mismatch):
		return KindDimensionMismatch
	case errors.Is(err, provider.ErrUnknownCurrency):
		return KindUnknownCurrency
	case errors.Is(err, provider.ErrUnknownLanguage):
		return KindUnknownLanguage
	case errors.Is(err, errCurrencyUnavailable):
		return KindCurrencyUnavailable
	case errors.Is(err, errTranslateUnavailable):
		return KindTranslateUnavailable
	default:
		return KindFailed
	}
}

// Wrappers that pin provider outages to the resolver that hit them.
var (
	errCurrencyUnavailable  = errors.New("currency conversion unavailable")
	errTranslateUnavailable = errors.New("translation unavailable")
)
