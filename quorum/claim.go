package quorum

import (
	"net"

	"github.com/holiman/uint256"

	"github.com/vrrb-chain/vrrb-core/primitives"
)

// Claim is the stake record described in spec §3: a published attestation
// tying a public key to an address, stake amount, and eligibility class.
// Grounded on the original's vrrb_core claim module (referenced throughout
// crates/consensus/quorum/src/quorum.rs).
type Claim struct {
	PublicKey   primitives.PublicKey
	Address     primitives.Address
	IP          net.IP
	Stake       uint64
	Eligibility primitives.EligibilityTag
	Signature   []byte
}

// Payload returns the canonical bytes a Claim's signature covers: the
// public key, address, IP, stake, and eligibility tag concatenated in a
// fixed order.
func (c *Claim) Payload() []byte {
	buf := make([]byte, 0, len(c.PublicKey)+20+len(c.IP)+8+1)
	buf = append(buf, c.PublicKey...)
	buf = append(buf, c.Address.Bytes()...)
	buf = append(buf, c.IP...)
	buf = append(buf, primitives.Uint64Bytes(c.Stake)...)
	buf = append(buf, byte(c.Eligibility))
	return buf
}

// ElectionResult computes the 256-bit election pointer for this claim under
// the given seed: a pure function of (seed, pubkey, stake), per spec §4.C
// and the Open Question resolution in SPEC_FULL.md (claim nonces do not
// participate).
func (c *Claim) ElectionResult(seed uint64) *uint256.Int {
	digest := primitives.Sha256(primitives.Uint64Bytes(seed), c.PublicKey, primitives.Uint64Bytes(c.Stake))
	return uint256.NewInt(0).SetBytes(digest[:])
}

// IsEligible reports whether the claim carries a stake-bearing eligibility
// tag (i.e. was published with a role other than None).
func (c *Claim) IsEligible() bool {
	return c.Eligibility != primitives.EligibleNone
}
