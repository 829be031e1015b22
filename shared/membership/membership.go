package membership

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	MinDigits = 4
	MaxDigits = 10
)

// Generate produces a random membership number as a zero-padded numeric
// string of exactly the requested length. Lengths outside [MinDigits,
// MaxDigits] clamp to the nearest bound.
func Generate(digits int) string {
	if digits < MinDigits {
		digits = MinDigits
	}

	if digits > MaxDigits {
		digits = MaxDigits
	}

	upper := int64(math.Pow10(digits))

	return fmt.Sprintf("%0*d", digits, rand.Int64N(upper))
}
