package quorum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrrb-chain/vrrb-core/primitives"
)

func makeEligibleClaims(n int) []*Claim {
	claims := make([]*Claim, n)
	for i := 0; i < n; i++ {
		claims[i] = &Claim{
			PublicKey:   primitives.PublicKey{byte(i), byte(i >> 8), 0xAB},
			Address:     primitives.Address{byte(i)},
			Stake:       uint64(100 + i),
			Eligibility: primitives.EligibleValidator,
		}
	}
	return claims
}

func TestNewRejectsZeroSeedOrHeight(t *testing.T) {
	_, err := New(0, 5)
	assert.ErrorIs(t, err, ErrInvalidChildBlock)

	_, err = New(5, 0)
	assert.ErrorIs(t, err, ErrInvalidChildBlock)
}

func TestRunElectionRejectsTooFewEligibleClaims(t *testing.T) {
	q, err := New(42, 1)
	require.NoError(t, err)

	_, err = q.RunElection(makeEligibleClaims(5))
	assert.ErrorIs(t, err, ErrInsufficientEligibleNodes)
}

func TestRunElectionSelectsQuorumFromEligibleClaims(t *testing.T) {
	q, err := New(42, 1)
	require.NoError(t, err)

	claims := makeEligibleClaims(30)
	result, err := q.RunElection(claims)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Members)

	var harvesters, farmers int
	for _, m := range result.Members {
		switch m.Kind {
		case primitives.QuorumHarvester:
			harvesters++
		case primitives.QuorumFarmer:
			farmers++
		}
	}
	assert.Greater(t, harvesters, 0)
	assert.Greater(t, farmers, 0)
}

func TestRunElectionIsDeterministicForSameSeed(t *testing.T) {
	claims := makeEligibleClaims(25)

	q1, err := New(99, 1)
	require.NoError(t, err)
	r1, err := q1.RunElection(claims)
	require.NoError(t, err)

	q2, err := New(99, 1)
	require.NoError(t, err)
	r2, err := q2.RunElection(claims)
	require.NoError(t, err)

	require.Equal(t, len(r1.Members), len(r2.Members))
	for i := range r1.Members {
		assert.Equal(t, r1.Members[i].NodeID, r2.Members[i].NodeID)
	}
}

func TestRunElectionPromotesMinerClaimsRegardlessOfPointer(t *testing.T) {
	claims := makeEligibleClaims(25)
	claims[0].Eligibility = primitives.EligibleMiner

	q, err := New(7, 1)
	require.NoError(t, err)
	result, err := q.RunElection(claims)
	require.NoError(t, err)

	found := false
	for _, m := range result.Members {
		if m.Kind == primitives.QuorumMiner && m.NodeID == primitives.NodeID(claims[0].Address.String()) {
			found = true
		}
	}
	assert.True(t, found)
}
