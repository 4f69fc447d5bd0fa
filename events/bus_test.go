package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversInOrder(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe(TopicPeerJoined)

	bus.Publish(TopicPeerJoined, PeerJoined{NodeID: "a"})
	bus.Publish(TopicPeerJoined, PeerJoined{NodeID: "b"})
	bus.Publish(TopicPeerJoined, PeerJoined{NodeID: "c"})

	var got []string
	for i := 0; i < 3; i++ {
		select {
		case evt := <-ch:
			got = append(got, evt.Payload.(PeerJoined).NodeID.String())
		case <-time.After(time.Second):
			require.Fail(t, "timed out waiting for event")
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestPublishDoesNotLeakAcrossTopics(t *testing.T) {
	bus := NewBus()
	joined := bus.Subscribe(TopicPeerJoined)
	left := bus.Subscribe(TopicPeerLeft)

	bus.Publish(TopicPeerJoined, PeerJoined{NodeID: "a"})

	select {
	case <-left:
		require.Fail(t, "unexpected event on unrelated topic")
	default:
	}

	select {
	case <-joined:
	default:
		require.Fail(t, "expected event was not delivered")
	}
}

func TestMultipleSubscribersEachReceiveTheEvent(t *testing.T) {
	bus := NewBus()
	sub1 := bus.Subscribe(TopicBlockConfirmed)
	sub2 := bus.Subscribe(TopicBlockConfirmed)

	bus.Publish(TopicBlockConfirmed, BlockConfirmed{})

	select {
	case <-sub1:
	case <-time.After(time.Second):
		require.Fail(t, "sub1 did not receive event")
	}
	select {
	case <-sub2:
	case <-time.After(time.Second):
		require.Fail(t, "sub2 did not receive event")
	}
}
