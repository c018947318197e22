package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/numo-sh/numo/internal/provider"
	"github.com/numo-sh/numo/pkg/currency"
	"github.com/numo-sh/numo/pkg/expr"
)

// CurrencyResolver handles "<number> <ccy> to|in <ccy>" where both codes
// are known ISO 4217 codes. The rate is fetched per request from the
// external source; the multiply runs at full precision and display rounds
// to two decimals. Provider failures are committed failures, never
// retried here.
type CurrencyResolver struct {
	Rates provider.RateSource
}

func (CurrencyResolver) Name() string { return "currency" }

func (r CurrencyResolver) Resolve(ctx context.Context, line Line, _ *expr.Env) Resolution {
	value, src, dst, ok := parseConversion(line)
	if !ok {
		return notApplicable()
	}
	if !currency.IsCode(src) || !currency.IsCode(dst) {
		return notApplicable()
	}

	base, quote := strings.ToUpper(src), strings.ToUpper(dst)

	rate, err := r.Rates.Rate(ctx, base, quote)
	if err != nil {
		if errors.Is(err, provider.ErrUnknownCurrency) {
			return failed(err)
		}
		return failed(fmt.Errorf("%w: %v", errCurrencyUnavailable, err))
	}

	return matched(fmt.Sprintf("%.2f %s", value*rate, quote))
}
