package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vrrb-chain/vrrb-core/primitives"
)

func TestNewAccountStartsAtZeroBalance(t *testing.T) {
	acc := NewAccount(primitives.Address{0x01}, nil)
	assert.Equal(t, int64(0), acc.Balance())
	assert.NotEqual(t, primitives.Bytes32{}, acc.Hash)
}

func TestApplyRequiresNoncePlusOne(t *testing.T) {
	acc := NewAccount(primitives.Address{0x01}, nil)

	err := acc.Apply(Update{Nonce: 2}, primitives.Bytes32{0xAA}, true)
	assert.ErrorIs(t, err, ErrNonceMismatch)

	credit := uint64(100)
	err = acc.Apply(Update{Nonce: 1, Credits: &credit}, primitives.Bytes32{0xAA}, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), acc.Balance())
	assert.Equal(t, uint64(1), acc.Nonce)
}

func TestApplyRecordsDigestOnCorrectSide(t *testing.T) {
	acc := NewAccount(primitives.Address{0x01}, nil)
	digest := primitives.Bytes32{0xBB}

	err := acc.Apply(Update{Nonce: 1}, digest, true)
	assert.NoError(t, err)
	_, sent := acc.SentDigests[digest]
	_, received := acc.ReceivedDigests[digest]
	assert.True(t, sent)
	assert.False(t, received)
}

func TestApplyChangesHash(t *testing.T) {
	acc := NewAccount(primitives.Address{0x01}, nil)
	before := acc.Hash

	credit := uint64(50)
	err := acc.Apply(Update{Nonce: 1, Credits: &credit}, primitives.Bytes32{0xCC}, false)
	assert.NoError(t, err)
	assert.NotEqual(t, before, acc.Hash)
}

func TestApplySecondUpdateRequiresNextNonce(t *testing.T) {
	acc := NewAccount(primitives.Address{0x01}, nil)
	credit := uint64(10)
	assert.NoError(t, acc.Apply(Update{Nonce: 1, Credits: &credit}, primitives.Bytes32{0x01}, false))

	err := acc.Apply(Update{Nonce: 1, Credits: &credit}, primitives.Bytes32{0x02}, false)
	assert.ErrorIs(t, err, ErrNonceMismatch)

	err = acc.Apply(Update{Nonce: 2, Credits: &credit}, primitives.Bytes32{0x02}, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(20), acc.Balance())
}
