// Package state implements the account model described in spec §4.F,
// grounded on go-ethereum's account/state_object field layout (nonce,
// balance, code, storage root) adapted to spec §6's SHA-256 account
// hash rather than go-ethereum's Keccak/RLP state trie encoding.
package state

import (
	"github.com/pkg/errors"

	"github.com/vrrb-chain/vrrb-core/primitives"
)

// ErrNonceMismatch is returned when an update's nonce does not follow
// the account's current nonce (spec §4.F "Account").
var ErrNonceMismatch = errors.New("state: nonce mismatch")

// Account is one address's balance and storage record.
type Account struct {
	Address primitives.Address
	PubKey  primitives.PublicKey

	Nonce   uint64
	Credits uint64
	Debits  uint64

	Storage map[string][]byte
	Code    []byte

	SentDigests     map[primitives.Bytes32]struct{}
	ReceivedDigests map[primitives.Bytes32]struct{}

	Hash primitives.Bytes32
}

// NewAccount builds a zero-value account for address.
func NewAccount(address primitives.Address, pubKey primitives.PublicKey) *Account {
	a := &Account{
		Address:         address,
		PubKey:          pubKey,
		SentDigests:     make(map[primitives.Bytes32]struct{}),
		ReceivedDigests: make(map[primitives.Bytes32]struct{}),
	}
	a.recomputeHash()
	return a
}

// Balance is Credits - Debits.
func (a *Account) Balance() int64 {
	return int64(a.Credits) - int64(a.Debits)
}

// Update is a sparse set of field changes applied to an account: Credits
// and Debits are amounts added to the running totals, Storage entries are
// merged into the existing map, and Code replaces the current code. Unset
// fields (nil pointers/maps/slices) leave the current value untouched;
// Nonce must advance by exactly one.
type Update struct {
	Nonce   uint64
	Credits *uint64
	Debits  *uint64
	Storage map[string][]byte
	Code    []byte
}

// Apply validates update.Nonce == account.Nonce+1, applies every
// non-absent field as described on Update, appends to the digest sets, and recomputes the
// account hash (spec §4.F "State").
func (a *Account) Apply(update Update, digest primitives.Bytes32, sent bool) error {
	if update.Nonce != a.Nonce+1 {
		return ErrNonceMismatch
	}

	a.Nonce = update.Nonce
	if update.Credits != nil {
		a.Credits += *update.Credits
	}
	if update.Debits != nil {
		a.Debits += *update.Debits
	}
	if update.Storage != nil {
		if a.Storage == nil {
			a.Storage = make(map[string][]byte)
		}
		for k, v := range update.Storage {
			a.Storage[k] = v
		}
	}
	if update.Code != nil {
		a.Code = update.Code
	}

	if sent {
		a.SentDigests[digest] = struct{}{}
	} else {
		a.ReceivedDigests[digest] = struct{}{}
	}

	a.recomputeHash()
	return nil
}

// recomputeHash rebuilds the account hash as SHA-256(nonce || balance
// || storage? || code?), per spec §4.F.
func (a *Account) recomputeHash() {
	parts := [][]byte{
		primitives.Uint64Bytes(a.Nonce),
		primitives.Int64Bytes(a.Balance()),
	}
	for _, v := range a.Storage {
		parts = append(parts, v)
	}
	if a.Code != nil {
		parts = append(parts, a.Code)
	}
	a.Hash = primitives.Sha256(parts...)
}
