package engine

import (
	"context"

	"github.com/numo-sh/numo/pkg/expr"
)

// Resolver attempts to interpret an input line under one grammar. It either
// produces a value, declines, or commits to a failure. Resolvers read and
// mutate the environment only synchronously within Resolve; the dispatcher
// guarantees sequential calls per batch.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, line Line, env *expr.Env) Resolution
}
