package engine

import "strings"

// Operator word aliases rewritten during normalization, so "2 plus 2"
// reaches the math resolver as "2 + 2". Matching is case-insensitive.
var operatorAliases = map[string]string{
	"plus":     "+",
	"add":      "+",
	"minus":    "-",
	"subtract": "-",
	"times":    "*",
	"multiply": "*",
	"divide":   "/",
	"division": "/",
	"mod":      "%",
	"modulus":  "%",
	"power":    "^",
	"exponent": "^",
}

// Line is the normalized form of one input expression. Fields preserve the
// user's original spelling (identifiers are case-sensitive, and unit output
// echoes the unit as typed); Lower carries the lowercase form resolvers
// pattern-match against. Normalization never fails; unrecognized tokens
// pass through untouched.
type Line struct {
	Raw    string   // trimmed input with operator aliases rewritten
	Fields []string // whitespace-split tokens, original case
	Lower  []string // lowercase counterpart of Fields
}

// Normalize trims and tokenizes one raw input line.
func Normalize(raw string) Line {
	fields := strings.Fields(raw)
	lower := make([]string, len(fields))

	for i, f := range fields {
		lf := strings.ToLower(f)
		if op, ok := operatorAliases[lf]; ok {
			fields[i] = op
			lf = op
		}
		lower[i] = lf
	}

	return Line{
		Raw:    strings.Join(fields, " "),
		Fields: fields,
		Lower:  lower,
	}
}

// Empty reports whether the line has no tokens.
func (l Line) Empty() bool {
	return len(l.Fields) == 0
}
