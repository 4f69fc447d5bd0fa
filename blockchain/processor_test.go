package blockchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrrb-chain/vrrb-core/block"
	"github.com/vrrb-chain/vrrb-core/primitives"
)

func newGenesis() *block.Genesis {
	return block.NewGenesis(&block.Header{Round: 0, Epoch: 1})
}

func convergenceAt(height uint64, parent primitives.Bytes32, confirmed bool) *block.Convergence {
	h := &block.Header{Height: height, Epoch: 1}
	c := block.NewConvergence(h, parent, 0, nil)
	if confirmed {
		c.WithCertificate(&block.Certificate{Signature: []byte{0x01}})
	}
	return c
}

func TestAcceptGenesisSucceedsOnce(t *testing.T) {
	p := NewProcessor(0)
	g := newGenesis()

	require.NoError(t, p.AcceptGenesis(g, nil))
	assert.Equal(t, g.Hash(), p.Head().Hash())

	err := p.AcceptGenesis(newGenesis(), nil)
	assert.ErrorIs(t, err, ErrInvalidGenesis)
}

func TestAcceptGenesisRejectsFailedValidation(t *testing.T) {
	p := NewProcessor(0)
	err := p.AcceptGenesis(newGenesis(), func(*block.Genesis) bool { return false })
	assert.ErrorIs(t, err, ErrInvalidGenesis)
	assert.Nil(t, p.Head())
}

func TestAcceptConvergenceOutOfSequenceIsStashedAndDequeued(t *testing.T) {
	p := NewProcessor(0)
	g := newGenesis()
	require.NoError(t, p.AcceptGenesis(g, nil))

	c1 := convergenceAt(1, g.Hash(), true)
	c2 := convergenceAt(2, c1.Hash(), true)

	// c2 arrives before c1: out of sequence, stashed under c1's hash.
	err := p.AcceptConvergence(c2)
	assert.ErrorIs(t, err, ErrBlockOutOfSequence)
	assert.Equal(t, g.Hash(), p.Head().Hash())

	// c1 arrives: accepted, and c2 is dequeued and applied right after.
	require.NoError(t, p.AcceptConvergence(c1))
	assert.Equal(t, c2.Hash(), p.Head().Hash())
}

func TestAcceptConvergenceRejectsStaleHeight(t *testing.T) {
	p := NewProcessor(0)
	g := newGenesis()
	require.NoError(t, p.AcceptGenesis(g, nil))

	c1 := convergenceAt(1, g.Hash(), true)
	require.NoError(t, p.AcceptConvergence(c1))

	stale := convergenceAt(1, g.Hash(), true)
	err := p.AcceptConvergence(stale)
	assert.ErrorIs(t, err, ErrNotTallestChain)
}

func TestAcceptConvergenceUnconfirmedNeverBecomesHead(t *testing.T) {
	p := NewProcessor(0)
	g := newGenesis()
	require.NoError(t, p.AcceptGenesis(g, nil))

	c1 := convergenceAt(1, g.Hash(), false)
	err := p.AcceptConvergence(c1)
	assert.ErrorIs(t, err, ErrUncertifiedBlock)
	assert.Equal(t, g.Hash(), p.Head().Hash())
}
