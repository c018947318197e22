package expr

import "sort"

// Env is a mutable variable environment mapping case-sensitive identifiers
// to numeric values. An Env is scoped to one batch of expressions and is
// never shared across batches; it is not safe for concurrent use.
type Env struct {
	vars map[string]float64
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]float64)}
}

// Get returns the value bound to name.
func (e *Env) Get(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name to value, overwriting any prior binding.
func (e *Env) Set(name string, value float64) {
	e.vars[name] = value
}

// Len returns the number of bindings.
func (e *Env) Len() int {
	return len(e.vars)
}

// Names returns all bound names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
