package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vrrb-chain/vrrb-core/block"
	"github.com/vrrb-chain/vrrb-core/primitives"
	"github.com/vrrb-chain/vrrb-core/quorum"
	"github.com/vrrb-chain/vrrb-core/txn"
)

func claimWithStake(pubkey byte, stake uint64) *quorum.Claim {
	return &quorum.Claim{
		PublicKey: primitives.PublicKey{pubkey},
		Stake:     stake,
	}
}

func proposalWith(claim *quorum.Claim, digests ...primitives.Bytes32) *block.Proposal {
	p := block.NewProposal(&block.Header{MinerClaim: claim}, primitives.Bytes32{})
	for _, d := range digests {
		p.Transactions.Insert(d, &txn.Transaction{})
	}
	return p
}

func TestResolveConflictsSharedTransactionGoesToLowestPointer(t *testing.T) {
	const seed = uint64(42)

	shared := primitives.Bytes32{0xAA}
	onlyInP1 := primitives.Bytes32{0xBB}
	onlyInP2 := primitives.Bytes32{0xCC}

	p1 := proposalWith(claimWithStake(1, 10), shared, onlyInP1)
	p2 := proposalWith(claimWithStake(2, 10), shared, onlyInP2)

	ptr1 := p1.ProposerPointer(seed)
	ptr2 := p2.ProposerPointer(seed)
	assert.NotEqual(t, 0, ptr1.Cmp(ptr2))

	winners := block.ResolveConflicts(seed, []*block.Proposal{p1, p2})

	// shared must appear exactly once.
	count := 0
	for _, d := range winners {
		if d == shared {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// every non-shared digest survives too.
	assert.Contains(t, winners, onlyInP1)
	assert.Contains(t, winners, onlyInP2)
	assert.Len(t, winners, 3)

	var winningProposal *block.Proposal
	var winnerOnly, loserOnly primitives.Bytes32
	if ptr1.Cmp(ptr2) < 0 {
		winningProposal = p1
		winnerOnly, loserOnly = onlyInP1, onlyInP2
	} else {
		winningProposal = p2
		winnerOnly, loserOnly = onlyInP2, onlyInP1
	}
	assert.True(t, winningProposal.Transactions.Has(shared))
	// shared is merged under the lowest pointer, so it sorts with the
	// winner's own digest, ahead of the other proposal's digest.
	assert.Equal(t, []primitives.Bytes32{shared, winnerOnly, loserOnly}, winners)
}
