package units

import (
	"fmt"
	"math"
)

// DimensionMismatchError reports a conversion between incompatible
// dimensions.
type DimensionMismatchError struct {
	From *Unit
	To   *Unit
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("cannot convert %s (%s) to %s (%s)",
		e.From.Symbol, e.From.Dimension, e.To.Symbol, e.To.Dimension)
}

// Convert converts value from one unit to another. Both units must belong
// to the same dimension.
func Convert(value float64, from, to *Unit) (float64, error) {
	if from.Dimension != to.Dimension {
		return 0, &DimensionMismatchError{From: from, To: to}
	}
	if from == to {
		return value, nil
	}

	// Angular conversion goes through pi/180 directly instead of the
	// factor table.
	if from.Dimension == Angle {
		if from.Symbol == "deg" {
			return value * math.Pi / 180, nil
		}
		return value * 180 / math.Pi, nil
	}

	return value * from.Factor / to.Factor, nil
}
