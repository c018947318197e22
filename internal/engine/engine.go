// Package engine implements the resolution pipeline: the ordered chain of
// resolvers that decide what an input expression means, and the variable
// environment threaded through a batch.
package engine

import (
	"context"
	"log/slog"

	"github.com/numo-sh/numo/internal/provider"
	"github.com/numo-sh/numo/pkg/expr"
)

// Engine owns the resolver chain. It is stateless across calls; each batch
// gets a fresh environment, so independent batches may run concurrently.
type Engine struct {
	resolvers []Resolver
	logger    *slog.Logger
}

// Options configures an Engine.
type Options struct {
	Rates      provider.RateSource
	Translator provider.Translator
	Logger     *slog.Logger // nil = discard
}

// New creates an Engine with the fixed resolver order: assignment, math,
// unit conversion, currency conversion, translation. Assignment overlaps
// syntactically with math and must run first; translation's grammar is the
// loosest and runs last so it cannot swallow numeric or unit inputs.
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		resolvers: []Resolver{
			AssignResolver{},
			MathResolver{},
			UnitResolver{},
			CurrencyResolver{Rates: opts.Rates},
			TranslateResolver{Translator: opts.Translator},
		},
		logger: opts.Logger,
	}
}

// Calculate evaluates a batch of expressions in order under one shared
// environment and returns one Result per input, same length and order.
// Later expressions may depend on variables assigned earlier, so the batch
// is strictly sequential. A failed expression never stops the batch;
// assignments applied before a failure stay applied.
func (e *Engine) Calculate(ctx context.Context, expressions []string) []Result {
	env := expr.NewEnv()
	results := make([]Result, len(expressions))
	for i, input := range expressions {
		results[i] = e.CalculateOne(ctx, input, env)
	}
	return results
}

// CalculateOne resolves a single expression against a caller-managed
// environment. Interactive front ends use this to keep one environment
// alive across prompts.
func (e *Engine) CalculateOne(ctx context.Context, input string, env *expr.Env) Result {
	line := Normalize(input)
	if line.Empty() {
		return Result{Input: input, Err: ErrNoMatch}
	}

	for _, r := range e.resolvers {
		res := r.Resolve(ctx, line, env)
		switch res.Outcome {
		case Matched:
			e.logger.Debug("resolved", "resolver", r.Name(), "input", line.Raw)
			return Result{Input: input, Resolver: r.Name(), Output: res.Value}
		case Failed:
			e.logger.Debug("resolution failed",
				"resolver", r.Name(), "input", line.Raw, "error", res.Err)
			return Result{Input: input, Resolver: r.Name(), Err: res.Err}
		}
	}

	return Result{Input: input, Err: ErrNoMatch}
}
