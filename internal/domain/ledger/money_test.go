package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 120.46, RoundCents(120.455))
	assert.Equal(t, -0.13, RoundCents(-0.125))
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.NotPanics(t, func() { RoundCents(v) })
		assert.Equal(t, 0.0, RoundCents(v), "v=%v", v)
	}
}

func TestAddCents(t *testing.T) {
	assert.Equal(t, 0.3, addCents(0.1, 0.2))
	assert.Equal(t, 10.0, addCents(10, math.NaN()))
	assert.Equal(t, -5.0, addCents(math.Inf(1), -5))
}
