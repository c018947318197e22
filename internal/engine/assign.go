package engine

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/numo-sh/numo/pkg/expr"
)

// assignPattern matches "name = expr" and "name := expr". The identifier
// must start with a letter, with letters, digits and underscores after.
var assignPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)\s*:?=\s*(.+)$`)

// AssignResolver handles variable assignment. It is first in the chain
// because assignment syntactically overlaps with arithmetic. The right-hand
// side is delegated to the expression grammar against the current
// environment, so "y = x + 3" sees x's existing binding. Nothing is bound
// unless the right-hand side evaluates.
type AssignResolver struct{}

func (AssignResolver) Name() string { return "assign" }

func (AssignResolver) Resolve(_ context.Context, line Line, env *expr.Env) Resolution {
	m := assignPattern.FindStringSubmatch(line.Raw)
	if m == nil {
		return notApplicable()
	}

	name, rhs := m[1], strings.TrimSpace(m[2])

	// Function names are reserved; let the other grammars have a try.
	if expr.IsBuiltin(name) {
		return notApplicable()
	}

	value, err := expr.Evaluate(rhs, env)
	if err != nil {
		if isParseError(err) {
			// The right-hand side is not arithmetic at all
			// ("greeting = hola"): not an assignment we understand.
			return notApplicable()
		}
		// Grammar matched but evaluation failed: the whole expression
		// fails, no partial assignment.
		return failed(err)
	}

	env.Set(name, value)
	return matched(formatNumber(value))
}

func isParseError(err error) bool {
	var perr *expr.ParseError
	return errors.As(err, &perr)
}
