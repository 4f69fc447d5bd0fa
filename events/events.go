// Package events defines the typed event catalogue exchanged between
// the network layer and the core (spec §6 "Network layer"), and a
// bounded FIFO-per-topic bus enforcing the one ordering guarantee spec
// §5 requires of it: events on a single topic are delivered in the
// order sent. Grounded on the teacher's co.Signal wakeup pattern
// (co/signal.go) for the bus's blocking-subscribe shape.
package events

import "github.com/vrrb-chain/vrrb-core/primitives"

// Topic names the logical channel an Event belongs to; FIFO ordering is
// only guaranteed within a topic, not across topics (spec §5).
type Topic string

const (
	TopicPeerJoined                             Topic = "peer_joined"
	TopicPeerLeft                               Topic = "peer_left"
	TopicFetchPeers                              Topic = "fetch_peers"
	TopicDHTStoreRequest                         Topic = "dht_store_request"
	TopicQuorumMembershipAssignmentCreated       Topic = "quorum_membership_assignment_created"
	TopicPartCommitmentCreated                   Topic = "part_commitment_created"
	TopicPartCommitmentAcknowledged              Topic = "part_commitment_acknowledged"
	TopicConvergenceBlockSignatureRequested      Topic = "convergence_block_signature_requested"
	TopicConvergenceBlockPartialSignatureCreated Topic = "convergence_block_partial_signature_created"
	TopicBlockConfirmed                          Topic = "block_confirmed"
)

// PeerJoined carries the discovered peer's routing data.
type PeerJoined struct {
	NodeID primitives.NodeID
	Addr   string
}

// PeerLeft reports that addr has disconnected or timed out.
type PeerLeft struct {
	Addr string
}

// FetchPeers requests up to N peer records from the network layer.
type FetchPeers struct {
	N int
}

// DHTStoreRequest asks the network layer to store (K, V) in the DHT.
type DHTStoreRequest struct {
	Key   primitives.Bytes32
	Value []byte
}

// QuorumMembershipAssignmentCreated announces a node's role for the
// current epoch's quorum.
type QuorumMembershipAssignmentCreated struct {
	Epoch  uint64
	NodeID primitives.NodeID
	Kind   primitives.QuorumKind
}

// PartCommitmentCreated carries one DKG participant's part message.
type PartCommitmentCreated struct {
	SessionID string
	FromIndex int
	Part      []byte
}

// PartCommitmentAcknowledged carries one DKG participant's response to
// a part message.
type PartCommitmentAcknowledged struct {
	SessionID string
	FromIndex int
	Ack       []byte
}

// ConvergenceBlockSignatureRequested asks quorum harvesters to sign a
// convergence block's header hash.
type ConvergenceBlockSignatureRequested struct {
	BlockHash primitives.Bytes32
}

// ConvergenceBlockPartialSignatureCreated carries one harvester's
// threshold signature share over a convergence block hash.
type ConvergenceBlockPartialSignatureCreated struct {
	BlockHash primitives.Bytes32
	NodeID    primitives.NodeID
	Share     []byte
}

// BlockConfirmed announces that a convergence block's certificate has
// been validated and the block applied to state.
type BlockConfirmed struct {
	BlockHash primitives.Bytes32
	Height    uint64
}
