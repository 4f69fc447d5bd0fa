// Package quorum implements the verifiable, deterministic quorum election
// described in spec §4.C, grounded on the original
// crates/consensus/quorum/src/quorum.rs (the `Election` trait impl for
// `Quorum`), translated from its VRF-backed seed generation and
// BTreeMap-ordered pointer selection.
package quorum

import (
	"math"
	"sort"

	"github.com/holiman/uint256"

	"github.com/vrrb-chain/vrrb-core/keys"
	"github.com/vrrb-chain/vrrb-core/primitives"
	"github.com/vrrb-chain/vrrb-core/vrf"
)

// minEligibleClaims is the minimum number of eligible claims required to
// run an election (spec §4.C step 1).
const minEligibleClaims = 20

// pointerParticipationRatio is the minimum share of eligible claims that
// must produce a distinct election pointer (spec §4.C step 3).
const pointerParticipationRatio = 0.65

// quorumSizeRatio selects the lowest-pointer fraction of eligible claims
// that forms the new quorum (spec §4.C step 4).
const quorumSizeRatio = 0.51

// harvesterRatio is the fraction of the selected quorum promoted to
// Harvester, the remainder becoming Farmers (spec §4.C final bullet).
const harvesterRatio = 0.30

// Member is a single elected quorum participant.
type Member struct {
	Kind    primitives.QuorumKind
	NodeID  primitives.NodeID
	PubKey  primitives.PublicKey
	Peers   []primitives.NodeID
}

// Quorum is the elected membership for one epoch, keyed by the seed and
// parent height it was derived from.
type Quorum struct {
	Seed    uint64
	Height  uint64
	Members []Member
}

// GenerateSeed builds a VRF over prevBlockHash keyed by kp's secret key,
// verifies it, and folds the 32-byte beta into a u64 drawn uniformly from
// [2^32, 2^64), per spec §4.C.
func GenerateSeed(height uint64, prevBlockHash []byte, kp *keys.KeyPair) (uint64, error) {
	if height == 0 {
		return 0, ErrInvalidChildBlock
	}

	out, err := vrf.Prove(kp.ToStdPrivateKey(), prevBlockHash)
	if err != nil {
		return 0, ErrInvalidSeed
	}

	if _, err := vrf.Verify(kp.ToStdPublicKey(), out.Proof, prevBlockHash); err != nil {
		return 0, ErrInvalidSeed
	}

	rng := vrf.RNGFromBeta(out.Beta)
	seed := rng.Uint64InRange(1<<32, math.MaxUint64)
	return seed, nil
}

// New constructs an empty Quorum for the given seed/height, validating both
// are non-zero per spec §4.C.
func New(seed uint64, height uint64) (*Quorum, error) {
	if seed == 0 || height == 0 {
		return nil, ErrInvalidChildBlock
	}
	return &Quorum{Seed: seed, Height: height}, nil
}

type pointerEntry struct {
	pointer *uint256.Int
	claim   *Claim
}

// RunElection selects the next quorum membership from claims, following
// the four steps of spec §4.C.
func (q *Quorum) RunElection(claims []*Claim) (*Quorum, error) {
	if q.Seed == 0 {
		return nil, ErrNoSeed
	}

	eligible := make([]*Claim, 0, len(claims))
	for _, c := range claims {
		if c.IsEligible() {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) < minEligibleClaims {
		return nil, ErrInsufficientEligibleNodes
	}

	entries := make([]pointerEntry, 0, len(eligible))
	seen := map[string]bool{}
	for _, c := range eligible {
		ptr := c.ElectionResult(q.Seed)
		key := ptr.Hex()
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, pointerEntry{pointer: ptr, claim: c})
	}

	minPointers := int(math.Ceil(float64(len(eligible)) * pointerParticipationRatio))
	if len(entries) < minPointers {
		return nil, &InvalidPointerSumError{Claims: eligible}
	}

	sort.Slice(entries, func(i, j int) bool {
		cmp := entries[i].pointer.Cmp(entries[j].pointer)
		if cmp != 0 {
			return cmp < 0
		}
		// Tie-break: strictly by claim public key bytewise ordering
		// (spec §4.C "Tie-breaks").
		return bytesLess(entries[i].claim.PublicKey, entries[j].claim.PublicKey)
	})

	// quorumSize is a fraction of the full eligible-claims count, not of
	// the deduped pointer set, matching get_final_quorum's num_claims
	// (claims.len(), taken before building the dedup map) in
	// crates/consensus/quorum/src/quorum.rs.
	quorumSize := int(math.Ceil(float64(len(eligible)) * quorumSizeRatio))
	if quorumSize > len(entries) {
		quorumSize = len(entries)
	}
	selected := entries[:quorumSize]

	harvesterCount := int(math.Ceil(float64(len(selected)) * harvesterRatio))

	members := make([]Member, 0, len(selected)+len(eligible))
	for i, e := range selected {
		kind := primitives.QuorumFarmer
		if i < harvesterCount {
			kind = primitives.QuorumHarvester
		}
		members = append(members, Member{
			Kind:   kind,
			NodeID: primitives.NodeID(e.claim.Address.String()),
			PubKey: e.claim.PublicKey,
		})
	}

	for _, c := range eligible {
		if c.Eligibility == primitives.EligibleMiner {
			members = append(members, Member{
				Kind:   primitives.QuorumMiner,
				NodeID: primitives.NodeID(c.Address.String()),
				PubKey: c.PublicKey,
			})
		}
	}

	q.Members = members
	return q, nil
}

func bytesLess(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
