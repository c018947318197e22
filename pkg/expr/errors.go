package expr

import "fmt"

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

// UnresolvedVariableError reports a reference to an identifier that has no
// binding in the environment.
type UnresolvedVariableError struct {
	Name string
}

func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("unresolved variable %q", e.Name)
}

// DivisionByZeroError reports a division or modulo with a zero divisor.
type DivisionByZeroError struct {
	Op string // "/" or "%"
}

func (e *DivisionByZeroError) Error() string {
	if e.Op == "%" {
		return "modulo by zero"
	}
	return "division by zero"
}

// FunctionArgError reports an invalid function invocation.
type FunctionArgError struct {
	Func    string
	Message string
}

func (e *FunctionArgError) Error() string {
	return fmt.Sprintf("invalid arguments to %s: %s", e.Func, e.Message)
}

// NotFiniteError reports an evaluation whose result overflowed to
// infinity or produced NaN. Such values are never surfaced as results.
type NotFiniteError struct{}

func (e *NotFiniteError) Error() string {
	return "result is not a finite number"
}
