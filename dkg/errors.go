package dkg

import "github.com/pkg/errors"

// Sentinel errors matching the DkgError taxonomy documented in the
// original crates/consensus/dkg_engine/src/lib.rs (test scaffolding)
// and spec §7.
var (
	ErrInvalidThresholdConfig   = errors.New("dkg: invalid threshold configuration")
	ErrNotAMember               = errors.New("dkg: node is not a member of this quorum")
	ErrPartMissing              = errors.New("dkg: no partial commitment recorded for sender")
	ErrAckMissing               = errors.New("dkg: no acknowledgement recorded for sender")
	ErrIncompleteAcks           = errors.New("dkg: not all acknowledgements received")
	ErrSyncKeyGenNotCreated     = errors.New("dkg: sync keygen instance not created")
	ErrSessionAlreadyReady      = errors.New("dkg: session already reached Ready for this epoch")
	ErrSessionFailed            = errors.New("dkg: session is in Failed state")
	ErrUnexpectedState          = errors.New("dkg: operation invalid for current state")
)
