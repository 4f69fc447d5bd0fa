package blockchain

import (
	"golang.org/x/sync/errgroup"

	"github.com/vrrb-chain/vrrb-core/block"
	"github.com/vrrb-chain/vrrb-core/keys"
	"github.com/vrrb-chain/vrrb-core/primitives"
	"github.com/vrrb-chain/vrrb-core/state"
	"github.com/vrrb-chain/vrrb-core/txn"
)

// FeeSchedule describes how a transaction's implicit fee is split
// between the validators that signed off on it and the proposer that
// included it (spec §4.E "Applying a block").
type FeeSchedule struct {
	ValidatorShare uint64
	ProposerShare  uint64
}

// Ledger is the minimal account-store contract ApplyBlock needs; the
// runtime package supplies an implementation backed by the state trie.
type Ledger interface {
	Account(addr primitives.Address) *state.Account
	PutAccount(acc *state.Account)
}

// VerifyTransactionSignatures checks every transaction's ECDSA
// signature concurrently via the job pool's natural fit,
// golang.org/x/sync/errgroup, returning the first failure encountered.
func VerifyTransactionSignatures(txns []*txn.Transaction) error {
	var g errgroup.Group
	for _, t := range txns {
		t := t
		g.Go(func() error {
			return keys.Verify(t.SenderPublicKey, t.Payload(), t.Signature)
		})
	}
	return g.Wait()
}

// ApplyBlock updates the state ledger for every transaction in c's
// winning set (spec §4.E "Applying a block"): debit sender, credit
// receiver, bump sender nonce, record digests, distribute validator and
// proposer fees, and credit the miner its block reward. It returns the
// resulting state and transaction roots.
func ApplyBlock(ledger Ledger, c *block.Convergence, winners []primitives.Bytes32, resolve func(primitives.Bytes32) *txn.Transaction, fees FeeSchedule, proposer, miner primitives.Address) (ApplyBlockResult, error) {
	for _, digest := range winners {
		t := resolve(digest)
		if t == nil {
			continue
		}

		sender := ledger.Account(t.SenderAddress)
		receiver := ledger.Account(t.ReceiverAddress)

		debit := t.Amount
		if err := sender.Apply(state.Update{Nonce: sender.Nonce + 1, Debits: &debit}, digest, true); err != nil {
			return ApplyBlockResult{}, err
		}

		credit := t.Amount
		if err := receiver.Apply(state.Update{Nonce: receiver.Nonce + 1, Credits: &credit}, digest, false); err != nil {
			return ApplyBlockResult{}, err
		}

		ledger.PutAccount(sender)
		ledger.PutAccount(receiver)

		creditValidators(ledger, t, fees.ValidatorShare)
		creditAddress(ledger, proposer, fees.ProposerShare)
	}

	if c.Header().BlockReward != nil {
		creditAddress(ledger, miner, uint64(c.Header().BlockReward.Amount))
	}

	txRoot := primitives.Sha256(digestBytes(winners)...)
	stateRoot := primitives.Sha256([]byte(proposer.String()), []byte(miner.String()), txRoot[:])

	return ApplyBlockResult{StateRoot: stateRoot, TransactionsRoot: txRoot}, nil
}

func creditValidators(ledger Ledger, t *txn.Transaction, share uint64) {
	if share == 0 || len(t.ValidatorsMap) == 0 {
		return
	}
	per := share / uint64(len(t.ValidatorsMap))
	for nodeID := range t.ValidatorsMap {
		addr := primitives.BytesToAddress([]byte(nodeID))
		creditAddress(ledger, addr, per)
	}
}

func creditAddress(ledger Ledger, addr primitives.Address, amount uint64) {
	if amount == 0 {
		return
	}
	acc := ledger.Account(addr)
	credit := amount
	_ = acc.Apply(state.Update{Nonce: acc.Nonce + 1, Credits: &credit}, primitives.Bytes32{}, false)
	ledger.PutAccount(acc)
}

func digestBytes(digests []primitives.Bytes32) [][]byte {
	out := make([][]byte, len(digests))
	for i, d := range digests {
		d := d
		out[i] = d[:]
	}
	return out
}
