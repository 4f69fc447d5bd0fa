package jobscheduler

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vrrb-chain/vrrb-core/jobpool"
	"github.com/vrrb-chain/vrrb-core/primitives"
)

func TestCalculateBackPressureIsSortedAndNormalized(t *testing.T) {
	s := New(primitives.NodeID("self-node"))

	const jobCount = 300
	tasks := make([]*jobpool.Task[struct{}], 0, jobCount)
	for i := 0; i < jobCount; i++ {
		tasks = append(tasks, jobpool.RunAsync(s.Local, func(ctx context.Context) (struct{}, error) {
			time.Sleep(120 * time.Microsecond)
			return struct{}{}, nil
		}))
	}
	for _, task := range tasks {
		_, _ = task.Join()
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 30; i++ {
		peer := primitives.NodeID("peer-" + string(rune('a'+i%26)) + string(rune('0'+i/26)))
		value := 110 + rng.Float64()*(350-110)
		s.RecordPeerBackpressure(peer, value)
	}

	result := s.CalculateBackPressure()
	assert.GreaterOrEqual(t, len(result), 30)

	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].Value, result[i].Value)
	}
	for _, bp := range result {
		assert.GreaterOrEqual(t, bp.Value, 0.0)
		assert.LessOrEqual(t, bp.Value, 1.0)
	}
}

func TestLaneSizingProducesNonNilPools(t *testing.T) {
	s := New(primitives.NodeID("self-node"))
	assert.NotNil(t, s.Local)
	assert.NotNil(t, s.Remote)
	assert.NotNil(t, s.Forwarding)
}

func TestAvgCompletionTimesReportsAllLanes(t *testing.T) {
	s := New(primitives.NodeID("self-node"))

	task := jobpool.RunSync(s.Local, func() int {
		time.Sleep(10 * time.Millisecond)
		return 1
	})
	_, err := task.Join()
	assert.NoError(t, err)

	times := s.AvgCompletionTimes()
	assert.Contains(t, times, "local")
	assert.Contains(t, times, "remote")
	assert.Contains(t, times, "forwarding")
}
