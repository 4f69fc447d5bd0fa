package block

import (
	"sort"

	"github.com/holiman/uint256"

	"github.com/vrrb-chain/vrrb-core/primitives"
)

// Convergence merges the winning transactions of one or more competing
// Proposals into a single canonical successor and carries the optional
// threshold certificate that confirms it (spec §3 "ConvergenceBlock",
// §4.E "Convergence and conflict resolution").
type Convergence struct {
	header       *Header
	ProposalRefs []primitives.Bytes32
	certificate  *Certificate
}

// NewConvergence builds a convergence block over the given proposals,
// setting block_seed to the parent's next_block_seed (spec §4.E step 4).
func NewConvergence(header *Header, parentHash primitives.Bytes32, parentNextSeed uint64, proposals []*Proposal) *Convergence {
	header.RefHashes = []primitives.Bytes32{parentHash}
	header.BlockSeed = parentNextSeed

	refs := make([]primitives.Bytes32, len(proposals))
	for i, p := range proposals {
		refs[i] = p.Hash()
	}

	return &Convergence{header: header, ProposalRefs: refs}
}

func (c *Convergence) Hash() primitives.Bytes32  { return c.header.Payload() }
func (c *Convergence) Header() *Header           { return c.header }
func (c *Convergence) Certificate() *Certificate { return c.certificate }
func (c *Convergence) NextBlockSeed() uint64     { return c.header.NextBlockSeed }

// WithCertificate attaches a finalized threshold certificate.
func (c *Convergence) WithCertificate(cert *Certificate) {
	c.certificate = cert
}

// conflictWinner pairs a contested digest with the pointer of the
// proposal that wins it.
type conflictWinner struct {
	digest  primitives.Bytes32
	pointer *uint256.Int
}

// ResolveConflicts implements spec §4.E's conflict-resolution algorithm:
// for every transaction appearing in more than one proposal, the
// proposer with the lowest election pointer (under seed) keeps it; all
// other proposals drop it. Remaining transactions from every proposal
// are merged in (proposer_pointer, tx_digest) order.
func ResolveConflicts(seed uint64, proposals []*Proposal) []primitives.Bytes32 {
	digestCount := map[primitives.Bytes32]int{}
	for _, p := range proposals {
		for _, d := range p.Transactions.Digests() {
			digestCount[d]++
		}
	}

	type entry struct {
		digest  primitives.Bytes32
		pointer *uint256.Int
	}
	var winners []entry

	for _, p := range proposals {
		pointer := p.ProposerPointer(seed)
		for _, d := range p.Transactions.Digests() {
			if digestCount[d] <= 1 {
				winners = append(winners, entry{digest: d, pointer: pointer})
				continue
			}
			// Contested: only the lowest-pointer proposer's copy survives.
			if isLowestPointerFor(d, seed, proposals) == p {
				winners = append(winners, entry{digest: d, pointer: pointer})
			}
		}
	}

	sort.Slice(winners, func(i, j int) bool {
		cmp := winners[i].pointer.Cmp(winners[j].pointer)
		if cmp != 0 {
			return cmp < 0
		}
		return bytesLess32(winners[i].digest, winners[j].digest)
	})

	seen := map[primitives.Bytes32]bool{}
	out := make([]primitives.Bytes32, 0, len(winners))
	for _, w := range winners {
		if seen[w.digest] {
			continue
		}
		seen[w.digest] = true
		out = append(out, w.digest)
	}
	return out
}

// isLowestPointerFor returns the proposal with the lowest election
// pointer among those that include digest.
func isLowestPointerFor(digest primitives.Bytes32, seed uint64, proposals []*Proposal) *Proposal {
	var best *Proposal
	var bestPointer *uint256.Int
	for _, p := range proposals {
		if !p.Transactions.Has(digest) {
			continue
		}
		pointer := p.ProposerPointer(seed)
		if best == nil || pointer.Cmp(bestPointer) < 0 {
			best = p
			bestPointer = pointer
		}
	}
	return best
}

func bytesLess32(a, b primitives.Bytes32) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
