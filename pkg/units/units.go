// Package units defines the measurement unit tables and conversion
// arithmetic. Conversions are valid only between units of the same
// dimension; each dimension has a canonical base unit and every unit
// carries a multiplicative factor relative to that base.
package units

import "strings"

// Dimension groups units between which conversion is valid.
type Dimension int

const (
	Length Dimension = iota
	Weight
	Volume
	Time
	Storage
	Speed
	Area
	Angle
)

var dimensionNames = map[Dimension]string{
	Length:  "length",
	Weight:  "weight",
	Volume:  "volume",
	Time:    "time",
	Storage: "digital storage",
	Speed:   "speed",
	Area:    "area",
	Angle:   "angle",
}

func (d Dimension) String() string {
	if s, ok := dimensionNames[d]; ok {
		return s
	}
	return "unknown"
}

// Unit is a measurement unit with its conversion factor to the dimension's
// base unit: value_in_base = value * Factor.
type Unit struct {
	Symbol    string
	Name      string // singular name, e.g. "meter"
	Plural    string // plural name, e.g. "meters"
	Dimension Dimension
	Factor    float64
}

// Base units: meter, gram, liter, second, byte, m/s, m², radian.
var allUnits = []*Unit{
	// Length
	{Symbol: "mm", Name: "millimeter", Plural: "millimeters", Dimension: Length, Factor: 0.001},
	{Symbol: "cm", Name: "centimeter", Plural: "centimeters", Dimension: Length, Factor: 0.01},
	{Symbol: "m", Name: "meter", Plural: "meters", Dimension: Length, Factor: 1},
	{Symbol: "km", Name: "kilometer", Plural: "kilometers", Dimension: Length, Factor: 1000},
	{Symbol: "in", Name: "inch", Plural: "inches", Dimension: Length, Factor: 0.0254},
	{Symbol: "ft", Name: "foot", Plural: "feet", Dimension: Length, Factor: 0.3048},
	{Symbol: "yd", Name: "yard", Plural: "yards", Dimension: Length, Factor: 0.9144},
	{Symbol: "mi", Name: "mile", Plural: "miles", Dimension: Length, Factor: 1609.344},

	// Weight
	{Symbol: "mg", Name: "milligram", Plural: "milligrams", Dimension: Weight, Factor: 0.001},
	{Symbol: "g", Name: "gram", Plural: "grams", Dimension: Weight, Factor: 1},
	{Symbol: "kg", Name: "kilogram", Plural: "kilograms", Dimension: Weight, Factor: 1000},
	{Symbol: "t", Name: "tonne", Plural: "tonnes", Dimension: Weight, Factor: 1e6},
	{Symbol: "oz", Name: "ounce", Plural: "ounces", Dimension: Weight, Factor: 28.349523125},
	{Symbol: "lb", Name: "pound", Plural: "pounds", Dimension: Weight, Factor: 453.59237},

	// Volume
	{Symbol: "ml", Name: "milliliter", Plural: "milliliters", Dimension: Volume, Factor: 0.001},
	{Symbol: "l", Name: "liter", Plural: "liters", Dimension: Volume, Factor: 1},
	{Symbol: "cup", Name: "cup", Plural: "cups", Dimension: Volume, Factor: 0.2365882365},
	{Symbol: "pt", Name: "pint", Plural: "pints", Dimension: Volume, Factor: 0.473176473},
	{Symbol: "qt", Name: "quart", Plural: "quarts", Dimension: Volume, Factor: 0.946352946},
	{Symbol: "gal", Name: "gallon", Plural: "gallons", Dimension: Volume, Factor: 3.785411784},

	// Time
	{Symbol: "ms", Name: "millisecond", Plural: "milliseconds", Dimension: Time, Factor: 0.001},
	{Symbol: "s", Name: "second", Plural: "seconds", Dimension: Time, Factor: 1},
	{Symbol: "min", Name: "minute", Plural: "minutes", Dimension: Time, Factor: 60},
	{Symbol: "h", Name: "hour", Plural: "hours", Dimension: Time, Factor: 3600},
	{Symbol: "d", Name: "day", Plural: "days", Dimension: Time, Factor: 86400},
	{Symbol: "wk", Name: "week", Plural: "weeks", Dimension: Time, Factor: 604800},
	{Symbol: "mo", Name: "month", Plural: "months", Dimension: Time, Factor: 2629800},
	{Symbol: "yr", Name: "year", Plural: "years", Dimension: Time, Factor: 31557600},

	// Digital storage (base: byte, binary multiples)
	{Symbol: "bit", Name: "bit", Plural: "bits", Dimension: Storage, Factor: 0.125},
	{Symbol: "b", Name: "byte", Plural: "bytes", Dimension: Storage, Factor: 1},
	{Symbol: "kb", Name: "kilobyte", Plural: "kilobytes", Dimension: Storage, Factor: 1024},
	{Symbol: "mb", Name: "megabyte", Plural: "megabytes", Dimension: Storage, Factor: 1 << 20},
	{Symbol: "gb", Name: "gigabyte", Plural: "gigabytes", Dimension: Storage, Factor: 1 << 30},
	{Symbol: "tb", Name: "terabyte", Plural: "terabytes", Dimension: Storage, Factor: 1 << 40},

	// Speed (base: meters per second)
	{Symbol: "mps", Name: "m/s", Plural: "m/s", Dimension: Speed, Factor: 1},
	{Symbol: "kmh", Name: "km/h", Plural: "km/h", Dimension: Speed, Factor: 1000.0 / 3600.0},
	{Symbol: "mph", Name: "mile/h", Plural: "miles/h", Dimension: Speed, Factor: 1609.344 / 3600.0},
	{Symbol: "knot", Name: "knot", Plural: "knots", Dimension: Speed, Factor: 1852.0 / 3600.0},

	// Area (base: square meter)
	{Symbol: "m2", Name: "sqm", Plural: "sqm", Dimension: Area, Factor: 1},
	{Symbol: "km2", Name: "sqkm", Plural: "sqkm", Dimension: Area, Factor: 1e6},
	{Symbol: "ha", Name: "hectare", Plural: "hectares", Dimension: Area, Factor: 1e4},
	{Symbol: "acre", Name: "acre", Plural: "acres", Dimension: Area, Factor: 4046.8564224},
	{Symbol: "ft2", Name: "sqft", Plural: "sqft", Dimension: Area, Factor: 0.09290304},

	// Angle (base: radian; degree/radian conversion itself is computed
	// from pi rather than these factors, see Convert)
	{Symbol: "rad", Name: "radian", Plural: "radians", Dimension: Angle, Factor: 1},
	{Symbol: "deg", Name: "degree", Plural: "degrees", Dimension: Angle, Factor: 0},
}

// lookup maps symbol, singular and plural names to units, lowercase.
var lookup = buildLookup()

func buildLookup() map[string]*Unit {
	m := make(map[string]*Unit, len(allUnits)*3)
	for _, u := range allUnits {
		m[strings.ToLower(u.Symbol)] = u
		m[strings.ToLower(u.Name)] = u
		m[strings.ToLower(u.Plural)] = u
	}
	return m
}

// Lookup resolves a unit by symbol, singular or plural name,
// case-insensitively.
func Lookup(name string) (*Unit, bool) {
	u, ok := lookup[strings.ToLower(name)]
	return u, ok
}

// Names returns every name a unit is known under, for completion.
func Names() []string {
	names := make([]string, 0, len(lookup))
	for name := range lookup {
		names = append(names, name)
	}
	return names
}
