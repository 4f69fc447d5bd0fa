// Package primitives defines the fixed-size identifier and hash types shared
// across the consensus core, mirroring the role the teacher's thor package
// plays for vechain/thor (thor.Bytes32, thor.Address).
package primitives

import (
	"encoding/hex"
	"fmt"
)

// Bytes32 is a 32-byte hash, used for block/transaction/claim digests.
type Bytes32 [32]byte

// BytesToBytes32 converts a byte slice to a Bytes32, truncating or
// left-padding as needed.
func BytesToBytes32(b []byte) (h Bytes32) {
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(h[32-len(b):], b)
	return
}

func (h Bytes32) Bytes() []byte { return h[:] }

func (h Bytes32) IsZero() bool { return h == Bytes32{} }

func (h Bytes32) String() string { return "0x" + hex.EncodeToString(h[:]) }

// Address is a 20-byte account/claim address.
type Address [20]byte

func BytesToAddress(b []byte) (a Address) {
	if len(b) > 20 {
		b = b[len(b)-20:]
	}
	copy(a[20-len(b):], b)
	return
}

func (a Address) Bytes() []byte { return a[:] }

func (a Address) IsZero() bool { return a == Address{} }

func (a Address) String() string { return "0x" + hex.EncodeToString(a[:]) }

// PublicKey is a serialized, compressed secp256k1 public key (33 bytes).
type PublicKey []byte

func (pk PublicKey) String() string { return "0x" + hex.EncodeToString(pk) }

func (pk PublicKey) Equal(other PublicKey) bool {
	if len(pk) != len(other) {
		return false
	}
	for i := range pk {
		if pk[i] != other[i] {
			return false
		}
	}
	return true
}

// NodeID is an opaque string identifier for a participating node. A
// Kademlia routing key is derived from it by hashing (see primitives.KadKey).
type NodeID string

// KadKey derives the 32-byte Kademlia routing key for a NodeID.
func KadKey(id NodeID) Bytes32 {
	return sha256Sum([]byte(id))
}

func (n NodeID) String() string { return string(n) }

// PeerID aliases NodeID: peers are identified the same way nodes are.
type PeerID = NodeID

// EligibilityTag enumerates the stake roles a Claim can hold.
type EligibilityTag uint8

const (
	EligibleNone EligibilityTag = iota
	EligibleMiner
	EligibleValidator
	EligibleHarvester
	EligibleFarmer
)

func (t EligibilityTag) String() string {
	switch t {
	case EligibleMiner:
		return "Miner"
	case EligibleValidator:
		return "Validator"
	case EligibleHarvester:
		return "Harvester"
	case EligibleFarmer:
		return "Farmer"
	default:
		return "None"
	}
}

// QuorumKind enumerates the three rotating quorum roles.
type QuorumKind uint8

const (
	QuorumHarvester QuorumKind = iota
	QuorumFarmer
	QuorumMiner
)

func (k QuorumKind) String() string {
	switch k {
	case QuorumHarvester:
		return "Harvester"
	case QuorumFarmer:
		return "Farmer"
	case QuorumMiner:
		return "Miner"
	default:
		return fmt.Sprintf("QuorumKind(%d)", uint8(k))
	}
}
