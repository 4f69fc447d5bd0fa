package vrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGFromBetaIsDeterministic(t *testing.T) {
	beta := [BetaSize]byte{0x01, 0x02, 0x03}

	r1 := RNGFromBeta(beta)
	r2 := RNGFromBeta(beta)

	assert.Equal(t, r1.Uint64(), r2.Uint64())
}

func TestUint64InRangeStaysWithinBounds(t *testing.T) {
	beta := [BetaSize]byte{0xAA, 0xBB}
	r := RNGFromBeta(beta)

	for i := 0; i < 1000; i++ {
		v := r.Uint64InRange(1<<32, 1<<40)
		assert.GreaterOrEqual(t, v, uint64(1)<<32)
		assert.LessOrEqual(t, v, uint64(1)<<40)
	}
}

func TestWordsDrawsRequestedCount(t *testing.T) {
	beta := [BetaSize]byte{0x05}
	r := RNGFromBeta(beta)

	words := r.Words(5)
	assert.Len(t, words, 5)
	for _, w := range words {
		assert.NotEmpty(t, w)
	}
}
