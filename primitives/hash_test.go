package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSha256IsDeterministicAndOrderSensitive(t *testing.T) {
	h1 := Sha256([]byte("a"), []byte("b"))
	h2 := Sha256([]byte("a"), []byte("b"))
	h3 := Sha256([]byte("b"), []byte("a"))

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
}

func TestUint64BytesRoundTripsBigEndian(t *testing.T) {
	b := Uint64Bytes(0x0102030405060708)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, b)
}

func TestInt64BytesHandlesNegativeValues(t *testing.T) {
	b := Int64Bytes(-1)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, b)
}

func TestBytesToBytes32PadsShortInput(t *testing.T) {
	h := BytesToBytes32([]byte{0x01})
	assert.True(t, h[31] == 0x01)
	assert.True(t, h.IsZero() == false)
}
