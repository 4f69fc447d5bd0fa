package block

import "github.com/vrrb-chain/vrrb-core/primitives"

// Genesis is the height-0 root of the chain. It carries no parent
// reference and no certificate; its validity is established by an
// independent valid_genesis check in the blockchain package rather than
// a threshold signature (spec §4.E).
type Genesis struct {
	header *Header
}

// NewGenesis constructs the genesis block. header.Height and
// header.RefHashes are forced to their genesis values regardless of
// what the caller passes.
func NewGenesis(header *Header) *Genesis {
	header.Height = 0
	header.RefHashes = nil
	return &Genesis{header: header}
}

func (g *Genesis) Hash() primitives.Bytes32  { return g.header.Payload() }
func (g *Genesis) Header() *Header           { return g.header }
func (g *Genesis) Certificate() *Certificate { return nil }
func (g *Genesis) NextBlockSeed() uint64     { return g.header.NextBlockSeed }
