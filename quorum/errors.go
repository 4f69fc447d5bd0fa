package quorum

import "github.com/pkg/errors"

// Sentinel errors for the quorum elector, matching the InvalidQuorum
// taxonomy in the original crates/consensus/quorum/src/quorum.rs and spec §7.
var (
	ErrInvalidSeed              = errors.New("quorum: invalid seed")
	ErrInvalidChildBlock        = errors.New("quorum: invalid child block")
	ErrInsufficientEligibleNodes = errors.New("quorum: insufficient eligible nodes")
	ErrNoSeed                   = errors.New("quorum: quorum has no seed")
)

// InvalidPointerSumError reports that fewer than 65% of the eligible claim
// set produced a distinct election pointer.
type InvalidPointerSumError struct {
	Claims []*Claim
}

func (e *InvalidPointerSumError) Error() string {
	return "quorum: invalid pointer sum across eligible claims"
}
