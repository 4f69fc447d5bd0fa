package jobpool

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSyncReturnsResultOnJoin(t *testing.T) {
	p := Build(1, 4, 0, time.Second)
	task := RunSync(p, func() int { return 42 })

	result, err := task.Join()
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.True(t, task.IsFinished())
}

func TestRunAsyncPropagatesError(t *testing.T) {
	p := Build(1, 4, 0, time.Second)
	boom := assert.AnError

	task := RunAsync(p, func(ctx context.Context) (int, error) {
		return 0, boom
	})

	_, err := task.Join()
	assert.Equal(t, boom, err)
}

func TestJoinTimeoutFlagsWithoutCancellingJob(t *testing.T) {
	p := Build(1, 4, 0, time.Second)
	var completed int32

	task := RunSync(p, func() int {
		time.Sleep(100 * time.Millisecond)
		atomic.StoreInt32(&completed, 1)
		return 1
	})

	_, _, ok := task.JoinTimeout(10 * time.Millisecond)
	assert.False(t, ok)
	assert.True(t, task.HasTimeoutOccurred())

	_, err := task.Join()
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&completed))
}

func TestPoolProcessesManyConcurrentJobs(t *testing.T) {
	p := Build(2, 8, 0, time.Second)

	const n = 50
	tasks := make([]*Task[int], n)
	for i := 0; i < n; i++ {
		i := i
		tasks[i] = RunSync(p, func() int { return i * 2 })
	}

	for i, task := range tasks {
		result, err := task.Join()
		require.NoError(t, err)
		assert.Equal(t, i*2, result)
	}
}
