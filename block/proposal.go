package block

import (
	"github.com/holiman/uint256"

	"github.com/vrrb-chain/vrrb-core/primitives"
	"github.com/vrrb-chain/vrrb-core/txn"
)

// TxnSet is an insertion-ordered digest-to-transaction map, the Go
// stand-in for the original's LinkedHashMap<TxDigest, Transaction>
// (spec §4.E "Proposal blocks"). Order matters: it is the validation
// order replayed during conflict resolution.
type TxnSet struct {
	order   []primitives.Bytes32
	entries map[primitives.Bytes32]*txn.Transaction
}

// NewTxnSet builds an empty ordered transaction set.
func NewTxnSet() *TxnSet {
	return &TxnSet{entries: make(map[primitives.Bytes32]*txn.Transaction)}
}

// Insert appends t under its digest, a no-op if the digest already
// exists (preserves first-inserted ordering).
func (s *TxnSet) Insert(digest primitives.Bytes32, t *txn.Transaction) {
	if _, exists := s.entries[digest]; exists {
		return
	}
	s.order = append(s.order, digest)
	s.entries[digest] = t
}

func (s *TxnSet) Get(digest primitives.Bytes32) (*txn.Transaction, bool) {
	t, ok := s.entries[digest]
	return t, ok
}

func (s *TxnSet) Has(digest primitives.Bytes32) bool {
	_, ok := s.entries[digest]
	return ok
}

// Remove drops digest from the set, used when conflict resolution
// decides another proposer's copy of the transaction wins.
func (s *TxnSet) Remove(digest primitives.Bytes32) {
	if _, ok := s.entries[digest]; !ok {
		return
	}
	delete(s.entries, digest)
	for i, d := range s.order {
		if d == digest {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Digests returns the set's digests in insertion order.
func (s *TxnSet) Digests() []primitives.Bytes32 {
	return append([]primitives.Bytes32(nil), s.order...)
}

func (s *TxnSet) Len() int { return len(s.order) }

// Proposal is produced by a single harvester for one round, referencing
// the last confirmed block (spec §4.E "Proposal blocks").
type Proposal struct {
	header       *Header
	Transactions *TxnSet
}

// NewProposal builds a proposal block referencing parentHash.
func NewProposal(header *Header, parentHash primitives.Bytes32) *Proposal {
	header.RefHashes = []primitives.Bytes32{parentHash}
	return &Proposal{header: header, Transactions: NewTxnSet()}
}

func (p *Proposal) Hash() primitives.Bytes32  { return p.header.Payload() }
func (p *Proposal) Header() *Header           { return p.header }
func (p *Proposal) Certificate() *Certificate { return nil }
func (p *Proposal) NextBlockSeed() uint64     { return p.header.NextBlockSeed }

// ProposerPointer is the election pointer this proposal's miner claim
// produced under the given seed (the same function used for quorum
// election pointers), used by conflict resolution (spec §4.E step 1) to
// decide which proposer wins a contested transaction.
func (p *Proposal) ProposerPointer(seed uint64) *uint256.Int {
	if p.header.MinerClaim == nil {
		return uint256.NewInt(0)
	}
	return p.header.MinerClaim.ElectionResult(seed)
}
