// Package trie implements the single-writer/multi-reader Merkle-Patricia
// trie described in spec §4.F, grounded on go-ethereum's trie package
// (the teacher's fork, github.com/vechain/go-ethereum, replaces
// go-ethereum wholesale per go.mod's replace directive) wrapped in a
// left-right snapshot-publish scheme: one writer log-appends Add/Extend
// operations to a working copy and atomically swaps a published root;
// readers clone a cheap handle bound to the last published root and
// never observe a partial write.
package trie

import (
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/trie"

	"github.com/vrrb-chain/vrrb-core/primitives"
)

// Op is a single write operation applied by the trie's writer.
type Op struct {
	Key   []byte
	Value []byte
}

// published is the immutable state readers observe: a committed root
// plus the backing node database (shared, never mutated after commit).
type published struct {
	root primitives.Bytes32
	db   *trie.Database
}

// LRTrie is a left-right trie: Add/Extend mutate only through the single
// writer half; Reader returns cheap, concurrent-safe read handles bound
// to the most recently published snapshot.
type LRTrie struct {
	writeMu sync.Mutex // serializes writer-side Add/Extend/Commit calls
	db      *trie.Database
	working *trie.Trie

	current atomic.Value // holds *published
}

// New builds an empty LRTrie backed by an in-memory node database.
func New() (*LRTrie, error) {
	db := trie.NewDatabase(rawdb.NewMemoryDatabase())
	working, err := trie.New(common.Hash{}, db)
	if err != nil {
		return nil, err
	}

	t := &LRTrie{db: db, working: working}
	t.current.Store(&published{root: primitives.Bytes32{}, db: db})
	return t, nil
}

// Add applies a single key/value write to the writer's working copy.
// The write is not visible to readers until Commit publishes it.
func (t *LRTrie) Add(key, value []byte) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return t.working.TryUpdate(key, value)
}

// Extend applies a batch of writes atomically from the writer's
// perspective (still only visible to readers after Commit).
func (t *LRTrie) Extend(ops []Op) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	for _, op := range ops {
		if err := t.working.TryUpdate(op.Key, op.Value); err != nil {
			return err
		}
	}
	return nil
}

// Commit computes the new root, persists it to the shared node
// database, and publishes it for readers. Matches spec §4.F "the writer
// accepts a sequence of operations and publishes a new immutable
// snapshot".
func (t *LRTrie) Commit() (primitives.Bytes32, error) {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	root, nodes, err := t.working.Commit(false)
	if err != nil {
		return primitives.Bytes32{}, err
	}
	if nodes != nil {
		if err := t.db.Update(trie.NewWithNodeSet(nodes)); err != nil {
			return primitives.Bytes32{}, err
		}
		if err := t.db.Commit(root, false); err != nil {
			return primitives.Bytes32{}, err
		}
	}

	t.current.Store(&published{root: primitives.Bytes32(root), db: t.db})

	next, err := trie.New(root, t.db)
	if err != nil {
		return primitives.Bytes32{}, err
	}
	t.working = next

	return primitives.Bytes32(root), nil
}

// Root returns the last published root hash.
func (t *LRTrie) Root() primitives.Bytes32 {
	return t.current.Load().(*published).root
}

// Reader is a read-only handle bound to one published snapshot. Cloning
// it (via LRTrie.Reader) never blocks the writer.
type Reader struct {
	tr *trie.Trie
}

// Reader returns a cheap, consistent read handle over the most recently
// published snapshot (spec §4.F "readers always see a consistent past
// snapshot and never block the writer").
func (t *LRTrie) Reader() (*Reader, error) {
	snap := t.current.Load().(*published)
	tr, err := trie.New(common.Hash(snap.root), snap.db)
	if err != nil {
		return nil, err
	}
	return &Reader{tr: tr}, nil
}

// Get looks up key in this reader's snapshot.
func (r *Reader) Get(key []byte) ([]byte, error) {
	return r.tr.TryGet(key)
}
