// Package block implements the tagged Genesis/Proposal/Convergence block
// variants and shared header described in spec §3/§4.E/§9, grounded on
// the cached-hash, copy-on-write body pattern of
// _examples/kevinruellan-Rmit/block/summary.go.
package block

import (
	"github.com/vrrb-chain/vrrb-core/primitives"
	"github.com/vrrb-chain/vrrb-core/quorum"
	"github.com/vrrb-chain/vrrb-core/reward"
)

// Header carries the fields shared by every block variant (spec §3
// "Block"). Field order in Payload matches spec §6's canonical signed
// payload exactly.
type Header struct {
	RefHashes       []primitives.Bytes32
	Round           uint64
	Epoch           uint64
	BlockSeed       uint64
	NextBlockSeed   uint64
	Height          uint64
	Timestamp       int64
	TxnHash         primitives.Bytes32
	MinerClaim      *quorum.Claim
	ClaimListHash   primitives.Bytes32
	BlockReward     *reward.Reward
	NextBlockReward *reward.Reward
	MinerSignature  []byte
}

// Payload returns the canonical bytes a header's signature covers: the
// fixed field order from spec §6, SHA-256'd before signing.
func (h *Header) Payload() primitives.Bytes32 {
	parts := make([][]byte, 0, 12+len(h.RefHashes))
	for _, ref := range h.RefHashes {
		parts = append(parts, ref[:])
	}
	parts = append(parts,
		primitives.Uint64Bytes(h.Round),
		primitives.Uint64Bytes(h.Epoch),
		primitives.Uint64Bytes(h.BlockSeed),
		primitives.Uint64Bytes(h.NextBlockSeed),
		primitives.Uint64Bytes(h.Height),
		primitives.Int64Bytes(h.Timestamp),
		h.TxnHash[:],
	)
	if h.MinerClaim != nil {
		parts = append(parts, h.MinerClaim.Payload())
	}
	parts = append(parts, h.ClaimListHash[:])
	if h.BlockReward != nil {
		parts = append(parts, primitives.Int64Bytes(h.BlockReward.Amount))
	}
	if h.NextBlockReward != nil {
		parts = append(parts, primitives.Int64Bytes(h.NextBlockReward.Amount))
	}
	return primitives.Sha256(parts...)
}

// InnerBlock is the capability set every block variant implements (spec
// §9 "Dynamic dispatch across block variants"): prefer this narrow
// interface over an inheritance hierarchy.
type InnerBlock interface {
	Hash() primitives.Bytes32
	Header() *Header
	Certificate() *Certificate
	NextBlockSeed() uint64
}
