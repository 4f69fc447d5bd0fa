// Package runtime assembles one node's components into the
// NodeRuntime described in spec §3 "Ownership summary" and §9 "Global
// mutable state": a single struct created at startup, owning its DKG
// engine, job scheduler, and state/mempool writers exclusively, with
// supervised actor goroutines replacing process globals. Grounded on
// cmd/thor/solo/solo.go's New/Run shape (co.Goes-supervised loop driven
// by a context).
package runtime

import (
	"context"
	"sync"
	"time"

	"github.com/inconshreveable/log15"

	"github.com/vrrb-chain/vrrb-core/blockchain"
	"github.com/vrrb-chain/vrrb-core/co"
	"github.com/vrrb-chain/vrrb-core/config"
	"github.com/vrrb-chain/vrrb-core/dkg"
	"github.com/vrrb-chain/vrrb-core/events"
	"github.com/vrrb-chain/vrrb-core/jobscheduler"
	"github.com/vrrb-chain/vrrb-core/keys"
	"github.com/vrrb-chain/vrrb-core/mempool"
	"github.com/vrrb-chain/vrrb-core/primitives"
	"github.com/vrrb-chain/vrrb-core/state"
	"github.com/vrrb-chain/vrrb-core/storage"
	"github.com/vrrb-chain/vrrb-core/trie"
)

var log = log15.New("pkg", "runtime")

// Ledger adapts the state trie into the blockchain.Ledger contract,
// owned exclusively by this NodeRuntime (spec §3's ownership rule).
type Ledger struct {
	mu       sync.Mutex
	accounts map[primitives.Address]*state.Account
	trie     *trie.LRTrie
}

func newLedger() (*Ledger, error) {
	tr, err := trie.New()
	if err != nil {
		return nil, err
	}
	return &Ledger{accounts: make(map[primitives.Address]*state.Account), trie: tr}, nil
}

func (l *Ledger) Account(addr primitives.Address) *state.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	if acc, ok := l.accounts[addr]; ok {
		return acc
	}
	return state.NewAccount(addr, nil)
}

func (l *Ledger) PutAccount(acc *state.Account) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[acc.Address] = acc
	_ = l.trie.Add(acc.Address.Bytes(), acc.Hash[:])
}

// Commit publishes the ledger's pending writes as a new trie snapshot,
// returning the resulting state root.
func (l *Ledger) Commit() (primitives.Bytes32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.trie.Commit()
}

// NodeRuntime owns every per-node singleton named in spec §3's
// ownership summary: the DKG engine, job scheduler, and state/mempool
// writers. Nothing else in the process touches these directly.
type NodeRuntime struct {
	cfg *config.Config
	kp  *keys.KeyPair

	Bus       *events.Bus
	Scheduler *jobscheduler.Scheduler
	Processor *blockchain.Processor
	Mempool   *mempool.Pool
	Ledger    *Ledger

	dkgMu  sync.Mutex
	dkgEng *dkg.Engine

	chainDB storage.Store
	goes    co.Goes
}

// New builds a NodeRuntime from cfg and its persisted keypair. It opens
// cfg.DataDir's chain store and wires it into the block processor, the
// one place in the runtime that persists accepted headers (spec §3's
// ownership rule: the runtime owns this store exclusively).
func New(cfg *config.Config, kp *keys.KeyPair) (*NodeRuntime, error) {
	ledger, err := newLedger()
	if err != nil {
		return nil, err
	}

	chainDB, err := storage.OpenLevelDB(cfg.DataDir + "/chaindata")
	if err != nil {
		return nil, err
	}

	processor := blockchain.NewProcessor(0)
	processor.SetChainStore(chainDB)

	return &NodeRuntime{
		cfg:       cfg,
		kp:        kp,
		Bus:       events.NewBus(),
		Scheduler: jobscheduler.New(primitives.NodeID(kp.Address().String())),
		Processor: processor,
		Mempool:   mempool.New(),
		Ledger:    ledger,
		chainDB:   chainDB,
	}, nil
}

// SetDKGEngine installs the active DKG engine for the current epoch;
// only one engine is owned at a time (spec §9 "A node may hold at most
// one Ready session per epoch").
func (r *NodeRuntime) SetDKGEngine(e *dkg.Engine) {
	r.dkgMu.Lock()
	defer r.dkgMu.Unlock()
	e.SetStore(r.chainDB)
	r.dkgEng = e
}

func (r *NodeRuntime) DKGEngine() *dkg.Engine {
	r.dkgMu.Lock()
	defer r.dkgMu.Unlock()
	return r.dkgEng
}

// Run starts the runtime's supervised actor loops and blocks until ctx
// is cancelled, then waits for every actor to flush (spec §5
// "Cancellation and shutdown").
func (r *NodeRuntime) Run(ctx context.Context) {
	r.goes.Go(func() { r.heartbeatLoop(ctx) })

	<-ctx.Done()
	log.Info("stopping node runtime")
	r.goes.Wait()
	if err := r.chainDB.Close(); err != nil {
		log.Warn("error closing chain store", "err", err)
	}
}

// heartbeatLoop periodically recomputes and logs backpressure. It is the
// only actor the runtime starts; no miner, validator or network actor is
// started by Run.
func (r *NodeRuntime) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bp := r.Scheduler.CalculateBackPressure()
			log.Debug("backpressure", "samples", len(bp))
		}
	}
}
