package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qmap/builder"
)

// The search result must be no worse than any individual trial.
func TestSearch_BestOfTrials(t *testing.T) {
	star, err := builder.StarTopology(builder.ReferenceQubits, 2)
	require.NoError(t, err)
	c := builder.ReferenceCircuitB()
	const iterations = 16

	best, _, err := Search(c, star, iterations, WithSeed(3))
	require.NoError(t, err)

	o := DefaultOptions()
	o.Seed = 3
	for i := 0; i < iterations; i++ {
		res, err := runTrial(c, star, i, &o)
		require.NoError(t, err)
		assert.LessOrEqual(t, best.Swaps, res.Swaps, "trial %d", i)
	}
}

func TestDeriveSeed_Streams(t *testing.T) {
	assert.Equal(t, deriveSeed(1, 5), deriveSeed(1, 5))
	assert.NotEqual(t, deriveSeed(1, 5), deriveSeed(1, 6))
	assert.NotEqual(t, deriveSeed(1, 5), deriveSeed(2, 5))
	assert.Equal(t, normalizeSeed(0), defaultRNGSeed)
	assert.Equal(t, int64(9), normalizeSeed(9))

	a, b := trialRNG(4, 2), trialRNG(4, 2)
	for k := 0; k < 8; k++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}
