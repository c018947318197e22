package engine

import (
	"context"

	"github.com/numo-sh/numo/pkg/expr"
)

// MathResolver evaluates arithmetic expressions against the current
// environment. A parse failure means the input is not arithmetic and the
// resolver declines; an evaluation failure (unresolved variable, division
// by zero, bad function arguments) is a committed failure for the
// expression.
type MathResolver struct{}

func (MathResolver) Name() string { return "math" }

func (MathResolver) Resolve(_ context.Context, line Line, env *expr.Env) Resolution {
	node, err := expr.Parse(line.Raw)
	if err != nil {
		return notApplicable()
	}

	value, err := expr.Eval(node, env)
	if err != nil {
		return failed(err)
	}

	return matched(formatNumber(value))
}
