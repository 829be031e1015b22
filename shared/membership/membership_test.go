package membership_test

import (
	"mahalo/shared/membership"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLength(t *testing.T) {
	for digits := membership.MinDigits; digits <= membership.MaxDigits; digits++ {
		for range 20 {
			number := membership.Generate(digits)
			assert.Len(t, number, digits)

			for _, c := range number {
				assert.True(t, c >= '0' && c <= '9', "membership number %q contains non-digit", number)
			}
		}
	}
}

func TestGenerateClampsDigits(t *testing.T) {
	assert.Len(t, membership.Generate(0), membership.MinDigits)
	assert.Len(t, membership.Generate(-3), membership.MinDigits)
	assert.Len(t, membership.Generate(25), membership.MaxDigits)
}
