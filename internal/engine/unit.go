package engine

import (
	"context"
	"strconv"

	"github.com/numo-sh/numo/pkg/expr"
	"github.com/numo-sh/numo/pkg/units"
)

// UnitResolver handles "<number> <unit> to|in <unit>". Lookup is
// case-insensitive; the output echoes the target unit exactly as the user
// typed it. The resolver commits once at least one side names a known
// unit — a pair of unknown tokens is left for the currency and translation
// grammars.
type UnitResolver struct{}

func (UnitResolver) Name() string { return "unit" }

func (UnitResolver) Resolve(_ context.Context, line Line, _ *expr.Env) Resolution {
	value, src, dst, ok := parseConversion(line)
	if !ok {
		return notApplicable()
	}

	from, fromOK := units.Lookup(src)
	to, toOK := units.Lookup(dst)

	switch {
	case fromOK && toOK:
		converted, err := units.Convert(value, from, to)
		if err != nil {
			return failed(err)
		}
		return matched(formatNumber(converted) + " " + line.Fields[3])
	case fromOK:
		return failed(&UnknownUnitError{Unit: dst})
	case toOK:
		return failed(&UnknownUnitError{Unit: src})
	default:
		return notApplicable()
	}
}

// parseConversion matches the shared conversion shape used by the unit and
// currency resolvers: exactly four tokens, a leading number, and "to" or
// "in" as the connective. It returns the value plus the lowercase source
// and target tokens.
func parseConversion(line Line) (value float64, src, dst string, ok bool) {
	if len(line.Fields) != 4 {
		return 0, "", "", false
	}
	if line.Lower[2] != "to" && line.Lower[2] != "in" {
		return 0, "", "", false
	}
	value, err := strconv.ParseFloat(line.Fields[0], 64)
	if err != nil {
		return 0, "", "", false
	}
	return value, line.Lower[1], line.Lower[3], true
}
