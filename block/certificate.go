package block

import (
	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/sign/bls"

	"github.com/vrrb-chain/vrrb-core/dkg"
	"github.com/vrrb-chain/vrrb-core/primitives"
)

// Certificate is the aggregated threshold signature a convergence block
// carries once at least t+1 harvesters have signed its header hash (spec
// §4.E "Certificate aggregation").
type Certificate struct {
	Signature   []byte
	Signatories []primitives.NodeID
}

// Verify checks sig against the quorum public key active at the block's
// epoch, matching spec §4.E's "valid only if its signature verifies
// under the quorum PublicKeySet" invariant.
func (c *Certificate) Verify(quorumPublicKey kyber.Point, blockHash primitives.Bytes32) error {
	return bls.Verify(dkg.Suite, quorumPublicKey, blockHash[:], c.Signature)
}

// Confirmed reports whether this block carries a non-nil certificate with
// a non-empty signature. It does not check the signature against the
// quorum public key; Verify does that.
func (c *Certificate) Confirmed() bool {
	return c != nil && len(c.Signature) > 0
}
