// Package mempool implements the ordered pending-transaction store
// described in spec §4.F, grounded on the left-right publish discipline
// of the trie package and the original's LinkedHashMap-backed mempool.
package mempool

import (
	"sync"
	"time"

	"github.com/vrrb-chain/vrrb-core/primitives"
	"github.com/vrrb-chain/vrrb-core/txn"
)

// Status is a TxnRecord's place in the validation lifecycle.
type Status int

const (
	Pending Status = iota
	Validated
	Rejected
)

// TxnRecord tracks one mempool entry's transaction and lifecycle
// timestamps (spec §4.F "Mempool").
type TxnRecord struct {
	Txn *txn.Transaction

	Status Status

	AddedAt     time.Time
	ValidatedAt time.Time
	RejectedAt  time.Time
	DeletedAt   time.Time
}

// Pool is a single-writer/multi-reader mempool: insertion order is
// preserved and lookups are O(1), mirroring the backing trie's
// left-right discipline without requiring a full Merkle trie for a
// structure that never needs root hashing.
type Pool struct {
	mu      sync.RWMutex
	order   []primitives.Bytes32
	entries map[primitives.Bytes32]*TxnRecord
}

// New builds an empty mempool.
func New() *Pool {
	return &Pool{entries: make(map[primitives.Bytes32]*TxnRecord)}
}

// Insert adds t if its digest is not already present. Re-inserting the
// same transaction is a no-op, matching spec §8's mempool idempotence
// property.
func (p *Pool) Insert(t *txn.Transaction) primitives.Bytes32 {
	digest := t.Digest()

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.entries[digest]; exists {
		return digest
	}

	p.order = append(p.order, digest)
	p.entries[digest] = &TxnRecord{Txn: t, Status: Pending, AddedAt: time.Now()}
	return digest
}

// Extend inserts every transaction in txns, preserving slice order for
// any digests not already present.
func (p *Pool) Extend(txns []*txn.Transaction) {
	for _, t := range txns {
		p.Insert(t)
	}
}

// Get returns the record for digest, in insertion order among ties.
func (p *Pool) Get(digest primitives.Bytes32) (*TxnRecord, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	rec, ok := p.entries[digest]
	return rec, ok
}

// Remove marks digest deleted and evicts it from the pool.
func (p *Pool) Remove(digest primitives.Bytes32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec, ok := p.entries[digest]
	if !ok {
		return
	}
	rec.DeletedAt = time.Now()
	delete(p.entries, digest)
	for i, d := range p.order {
		if d == digest {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// MarkValidated transitions digest's record to Validated.
func (p *Pool) MarkValidated(digest primitives.Bytes32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if rec, ok := p.entries[digest]; ok {
		rec.Status = Validated
		rec.ValidatedAt = time.Now()
	}
}

// MarkRejected transitions digest's record to Rejected.
func (p *Pool) MarkRejected(digest primitives.Bytes32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if rec, ok := p.entries[digest]; ok {
		rec.Status = Rejected
		rec.RejectedAt = time.Now()
	}
}

// IsValidated reports whether digest has been validated, and when.
func (p *Pool) IsValidated(digest primitives.Bytes32) (bool, time.Time) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	rec, ok := p.entries[digest]
	if !ok || rec.Status != Validated {
		return false, time.Time{}
	}
	return true, rec.ValidatedAt
}

// Size returns the number of records currently held.
func (p *Pool) Size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.order)
}
