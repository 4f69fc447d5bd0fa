package mempool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrrb-chain/vrrb-core/primitives"
	"github.com/vrrb-chain/vrrb-core/txn"
)

func TestInsertIsIdempotent(t *testing.T) {
	p := New()
	tx := &txn.Transaction{Amount: 10, Nonce: 1}

	d1 := p.Insert(tx)
	d2 := p.Insert(tx)

	assert.Equal(t, d1, d2)
	assert.Equal(t, 1, p.Size())
}

func TestExtendPreservesOrder(t *testing.T) {
	p := New()
	txns := []*txn.Transaction{
		{Amount: 1, Nonce: 1},
		{Amount: 2, Nonce: 1},
		{Amount: 3, Nonce: 1},
	}
	p.Extend(txns)
	assert.Equal(t, 3, p.Size())
	assert.Equal(t, []primitives.Bytes32{txns[0].Digest(), txns[1].Digest(), txns[2].Digest()}, p.order)
}

func TestMarkValidatedThenRemove(t *testing.T) {
	p := New()
	tx := &txn.Transaction{Amount: 5, Nonce: 1}
	digest := p.Insert(tx)

	ok, _ := p.IsValidated(digest)
	assert.False(t, ok)

	p.MarkValidated(digest)
	ok, _ = p.IsValidated(digest)
	assert.True(t, ok)

	rec, found := p.Get(digest)
	require.True(t, found)
	assert.Equal(t, Validated, rec.Status)

	p.Remove(digest)
	_, found = p.Get(digest)
	assert.False(t, found)
	assert.Equal(t, 0, p.Size())
}

func TestMarkRejected(t *testing.T) {
	p := New()
	tx := &txn.Transaction{Amount: 7, Nonce: 1}
	digest := p.Insert(tx)

	p.MarkRejected(digest)
	rec, found := p.Get(digest)
	require.True(t, found)
	assert.Equal(t, Rejected, rec.Status)
}

func TestGetMissingDigestReturnsFalse(t *testing.T) {
	p := New()
	_, found := p.Get(primitives.Bytes32{0xFF})
	assert.False(t, found)
}
