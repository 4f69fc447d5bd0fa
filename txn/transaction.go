// Package txn defines the wire-level transaction format described in
// spec §6 ("Transaction format"), grounded on go-ethereum's
// transaction-signing shape (digest-then-ECDSA) as used throughout the
// teacher's tx package, adapted to the SHA-256/secp256k1 pairing spec §6
// fixes rather than go-ethereum's Keccak256/RLP encoding.
package txn

import (
	"github.com/vrrb-chain/vrrb-core/primitives"
)

// Transaction is a value transfer from sender to receiver, carrying an
// optional validator attestation map (populated as the job scheduler's
// validators sign off on it).
type Transaction struct {
	Timestamp       int64
	SenderAddress   primitives.Address
	SenderPublicKey primitives.PublicKey
	ReceiverAddress primitives.Address
	Token           string
	Amount          uint64
	Signature       []byte
	ValidatorsMap   map[primitives.NodeID]bool
	Nonce           uint64
}

// Payload returns the canonical bytes a transaction's digest and
// signature cover, in the fixed field order from spec §6.
func (t *Transaction) Payload() []byte {
	buf := make([]byte, 0, 8+20+len(t.SenderPublicKey)+20+len(t.Token)+8+8)
	buf = append(buf, primitives.Int64Bytes(t.Timestamp)...)
	buf = append(buf, t.SenderAddress.Bytes()...)
	buf = append(buf, t.SenderPublicKey...)
	buf = append(buf, t.ReceiverAddress.Bytes()...)
	buf = append(buf, []byte(t.Token)...)
	buf = append(buf, primitives.Uint64Bytes(t.Amount)...)
	buf = append(buf, primitives.Uint64Bytes(t.Nonce)...)
	return buf
}

// Digest is the SHA-256 of the canonical payload, per spec §6.
func (t *Transaction) Digest() primitives.Bytes32 {
	return primitives.Sha256(t.Payload())
}
