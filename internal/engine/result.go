package engine

import "errors"

// ErrNoMatch is the declarative "unrecognized input" outcome: no resolver's
// grammar matched the expression. It is not a resolver failure.
var ErrNoMatch = errors.New("no resolver matched")

// Outcome classifies what a resolver decided about an input.
type Outcome int

const (
	// NotApplicable means the resolver's grammar did not match; the
	// dispatcher moves on to the next resolver.
	NotApplicable Outcome = iota

	// Matched means the resolver fully resolved the input.
	Matched

	// Failed means the resolver's grammar matched but resolution failed;
	// the chain stops and the failure is the expression's result.
	Failed
)

// Resolution is a single resolver's tagged outcome for one input.
type Resolution struct {
	Outcome Outcome
	Value   string
	Err     error
}

func notApplicable() Resolution {
	return Resolution{Outcome: NotApplicable}
}

func matched(value string) Resolution {
	return Resolution{Outcome: Matched, Value: value}
}

func failed(err error) Resolution {
	return Resolution{Outcome: Failed, Err: err}
}

// Result is the outcome of resolving one expression. Exactly one of Output
// (success) and Err (failure) is meaningful; a nil Err means success.
type Result struct {
	Input    string // the expression as received
	Resolver string // name of the resolver that decided, empty for no match
	Output   string // formatted success value
	Err      error  // failure reason, ErrNoMatch when nothing matched
}

// OK reports whether the expression resolved successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// String returns the user-visible text for the result.
func (r Result) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Output
}
