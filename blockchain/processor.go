// Package blockchain implements the block sequencing, conflict
// resolution, and certificate-confirmation pipeline described in spec
// §4.E, grounded on the BFTEngine's LRU-cache-plus-single-writer shape
// in _examples/kevinruellan-Rmit/bft/engine.go.
package blockchain

import (
	"sync"

	"github.com/ethereum/go-ethereum/rlp"
	lru "github.com/hashicorp/golang-lru"
	"go.dedis.ch/kyber/v3"

	"github.com/vrrb-chain/vrrb-core/block"
	"github.com/vrrb-chain/vrrb-core/primitives"
	"github.com/vrrb-chain/vrrb-core/quorum"
	"github.com/vrrb-chain/vrrb-core/reward"
	"github.com/vrrb-chain/vrrb-core/storage"
)

// defaultBlockCacheCapacity is the LRU's default size (spec §4.E "A
// bounded LRU block_cache (default capacity 100)").
const defaultBlockCacheCapacity = 100

// ApplyBlockResult is the pair of roots produced by applying a
// confirmed block to state, becoming part of the next header (spec
// §4.E "Applying a block").
type ApplyBlockResult struct {
	StateRoot        primitives.Bytes32
	TransactionsRoot primitives.Bytes32
}

// Processor enforces block-sequencing invariants and owns the chain's
// single writer lock (spec §9 "The chain DAG is shared between the
// block processor and the miner; all mutations go through a single
// writer lock").
type Processor struct {
	mu sync.Mutex

	genesis *block.Genesis
	head    block.InnerBlock

	blockCache   *lru.Cache // hash -> block.InnerBlock
	futureBlocks map[primitives.Bytes32][]*block.Convergence // parent hash -> stashed children
	invalid      map[primitives.Bytes32]error

	chainStore storage.Store // optional persistence hook, see dumpLocked
}

// SetChainStore installs the key/value store every accepted header is
// dumped to, keyed by its hash. Nil by default; a Processor used only
// for in-memory sequencing (tests) never needs one.
func (p *Processor) SetChainStore(store storage.Store) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chainStore = store
}

// headerRecord is the RLP-encoded shadow of block.Header written to the
// chain store: a flattened, pointer-free copy, since the header's
// MinerClaim/BlockReward fields may be nil and RLP only encodes struct
// pointers cleanly when they are never nil.
type headerRecord struct {
	RefHashes       []primitives.Bytes32
	Round           uint64
	Epoch           uint64
	BlockSeed       uint64
	NextBlockSeed   uint64
	Height          uint64
	Timestamp       int64
	TxnHash         primitives.Bytes32
	MinerClaim      quorum.Claim
	ClaimListHash   primitives.Bytes32
	BlockReward     reward.Reward
	NextBlockReward reward.Reward
	MinerSignature  []byte
}

// dumpLocked persists b's header to the chain store, if one is
// installed. Called only while p.mu is held. Mirrors the original block
// processor's post-accept dump call; never named as a spec operation
// but assumed by "applied to state".
func (p *Processor) dumpLocked(b block.InnerBlock) error {
	if p.chainStore == nil {
		return nil
	}

	h := b.Header()
	rec := headerRecord{
		RefHashes:      h.RefHashes,
		Round:          h.Round,
		Epoch:          h.Epoch,
		BlockSeed:      h.BlockSeed,
		NextBlockSeed:  h.NextBlockSeed,
		Height:         h.Height,
		Timestamp:      h.Timestamp,
		TxnHash:        h.TxnHash,
		ClaimListHash:  h.ClaimListHash,
		MinerSignature: h.MinerSignature,
	}
	if h.MinerClaim != nil {
		rec.MinerClaim = *h.MinerClaim
	}
	if h.BlockReward != nil {
		rec.BlockReward = *h.BlockReward
	}
	if h.NextBlockReward != nil {
		rec.NextBlockReward = *h.NextBlockReward
	}

	enc, err := rlp.EncodeToBytes(&rec)
	if err != nil {
		return err
	}
	hash := b.Hash()
	return p.chainStore.Put(hash[:], enc)
}

// NewProcessor builds an empty Processor. A capacity of 0 selects the
// spec default of 100.
func NewProcessor(blockCacheCapacity int) *Processor {
	if blockCacheCapacity <= 0 {
		blockCacheCapacity = defaultBlockCacheCapacity
	}
	cache, _ := lru.New(blockCacheCapacity)

	return &Processor{
		blockCache:   cache,
		futureBlocks: make(map[primitives.Bytes32][]*block.Convergence),
		invalid:      make(map[primitives.Bytes32]error),
	}
}

// Head returns the current chain head, nil before genesis is accepted.
func (p *Processor) Head() block.InnerBlock {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.head
}

// Genesis returns the accepted genesis block, nil if none yet.
func (p *Processor) Genesis() *block.Genesis {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.genesis
}

// AcceptGenesis accepts g as the chain root iff no genesis has been
// accepted yet and g passes validateGenesis (spec §4.E "only a block of
// height 0 is accepted; it must pass an independent valid_genesis
// check").
func (p *Processor) AcceptGenesis(g *block.Genesis, validateGenesis func(*block.Genesis) bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.genesis != nil {
		return ErrInvalidGenesis
	}
	if validateGenesis != nil && !validateGenesis(g) {
		return ErrInvalidGenesis
	}

	p.genesis = g
	p.head = g
	p.blockCache.Add(g.Hash(), g)
	return p.dumpLocked(g)
}

// AcceptConvergence enforces the height-sequencing rule and, once a
// block is accepted at the correct height, dequeues any previously
// stashed children waiting on it (spec §4.E, §8 scenario 2).
func (p *Processor) AcceptConvergence(c *block.Convergence) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.acceptLocked(c)
}

func (p *Processor) acceptLocked(c *block.Convergence) error {
	if p.head == nil {
		return ErrInvalidGenesis
	}

	headHeight := p.head.Header().Height
	h := c.Header().Height

	switch {
	case h < headHeight+1:
		return ErrNotTallestChain
	case h > headHeight+1:
		parent := parentHash(c)
		p.futureBlocks[parent] = append(p.futureBlocks[parent], c)
		return ErrBlockOutOfSequence
	}

	if !c.Certificate().Confirmed() {
		// Unconfirmed blocks are allowed in the DAG but never applied
		// to state or promoted to head (spec §4.E).
		p.blockCache.Add(c.Hash(), c)
		return ErrUncertifiedBlock
	}

	p.head = c
	p.blockCache.Add(c.Hash(), c)
	if err := p.dumpLocked(c); err != nil {
		return err
	}

	// Dequeue any children that were waiting on this block.
	waiting := p.futureBlocks[c.Hash()]
	delete(p.futureBlocks, c.Hash())
	for _, child := range waiting {
		_ = p.acceptLocked(child) // re-run sequencing; may re-stash or fail again
	}

	return nil
}

// Quarantine records hash as invalid with cause, matching spec §7's
// "invalid map keyed by hash" propagation policy.
func (p *Processor) Quarantine(hash primitives.Bytes32, cause error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.invalid[hash] = cause
}

// IsInvalid reports whether hash was previously quarantined.
func (p *Processor) IsInvalid(hash primitives.Bytes32) (error, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	err, ok := p.invalid[hash]
	return err, ok
}

// VerifyCertificate checks a convergence block's certificate against
// the quorum public key active at its epoch (spec §4.E "Certificate
// aggregation").
func VerifyCertificate(c *block.Convergence, quorumPublicKey kyber.Point) error {
	cert := c.Certificate()
	if cert == nil {
		return ErrUncertifiedBlock
	}
	return cert.Verify(quorumPublicKey, c.Hash())
}

func parentHash(c *block.Convergence) primitives.Bytes32 {
	refs := c.Header().RefHashes
	if len(refs) == 0 {
		return primitives.Bytes32{}
	}
	return refs[0]
}
