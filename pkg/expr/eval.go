// Package expr implements the arithmetic expression grammar: infix
// operators + - * / ^ %, parenthesized grouping, decimal literals,
// variables resolved against an Env, and the variadic aggregate functions
// nsum, navg, nmax and nmin.
package expr

import (
	"fmt"
	"math"
)

// Evaluate parses and evaluates input against env.
func Evaluate(input string, env *Env) (float64, error) {
	node, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Eval(node, env)
}

// Eval evaluates a parsed expression tree against env. The result is
// guaranteed finite; overflow and NaN are reported as errors.
func Eval(node Node, env *Env) (float64, error) {
	v, err := eval(node, env)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &NotFiniteError{}
	}
	return v, nil
}

func eval(node Node, env *Env) (float64, error) {
	switch n := node.(type) {
	case *NumberLit:
		return n.Value, nil

	case *Ident:
		v, ok := env.Get(n.Name)
		if !ok {
			return 0, &UnresolvedVariableError{Name: n.Name}
		}
		return v, nil

	case *UnaryExpr:
		v, err := eval(n.Operand, env)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case *BinaryExpr:
		return evalBinary(n, env)

	case *CallExpr:
		return evalCall(n, env)

	default:
		return 0, fmt.Errorf("unsupported node type %T", node)
	}
}

func evalBinary(n *BinaryExpr, env *Env) (float64, error) {
	left, err := eval(n.Left, env)
	if err != nil {
		return 0, err
	}
	right, err := eval(n.Right, env)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case TOKEN_PLUS:
		return left + right, nil
	case TOKEN_MINUS:
		return left - right, nil
	case TOKEN_STAR:
		return left * right, nil
	case TOKEN_SLASH:
		if right == 0 {
			return 0, &DivisionByZeroError{Op: "/"}
		}
		return left / right, nil
	case TOKEN_PERCENT:
		if right == 0 {
			return 0, &DivisionByZeroError{Op: "%"}
		}
		return math.Mod(left, right), nil
	case TOKEN_CARET:
		return math.Pow(left, right), nil
	default:
		return 0, fmt.Errorf("unsupported operator %s", n.Op)
	}
}

func evalCall(n *CallExpr, env *Env) (float64, error) {
	fn, ok := builtins[n.Func]
	if !ok {
		return 0, &UnresolvedVariableError{Name: n.Func}
	}
	if len(n.Args) == 0 {
		return 0, &FunctionArgError{Func: n.Func, Message: "at least one argument required"}
	}

	args := make([]float64, len(n.Args))
	for i, arg := range n.Args {
		v, err := eval(arg, env)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return fn(args), nil
}
