package expr

// Built-in aggregate functions. Each takes one or more numeric arguments;
// invocation with zero arguments is rejected during evaluation.

type builtinFunc func(args []float64) float64

var builtins = map[string]builtinFunc{
	"nsum": func(args []float64) float64 {
		sum := 0.0
		for _, v := range args {
			sum += v
		}
		return sum
	},
	"navg": func(args []float64) float64 {
		sum := 0.0
		for _, v := range args {
			sum += v
		}
		return sum / float64(len(args))
	},
	"nmax": func(args []float64) float64 {
		max := args[0]
		for _, v := range args[1:] {
			if v > max {
				max = v
			}
		}
		return max
	},
	"nmin": func(args []float64) float64 {
		min := args[0]
		for _, v := range args[1:] {
			if v < min {
				min = v
			}
		}
		return min
	},
}

// IsBuiltin reports whether name is a built-in function. Built-in names are
// reserved and cannot be used as variable names.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// BuiltinNames returns the names of all built-in functions.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return names
}
