package blockchain

import "github.com/pkg/errors"

// Sentinel errors matching the block error taxonomy in spec §7.
var (
	ErrBlockOutOfSequence = errors.New("blockchain: block out of sequence")
	ErrNotTallestChain    = errors.New("blockchain: not the tallest chain")
	ErrInvalidGenesis     = errors.New("blockchain: invalid genesis block")
	ErrInvalidSignature   = errors.New("blockchain: invalid miner signature")
	ErrUncertifiedBlock   = errors.New("blockchain: block lacks a valid certificate")
	ErrConflictingProposal = errors.New("blockchain: conflicting proposal for round")
)
