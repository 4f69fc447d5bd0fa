package co_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vrrb-chain/vrrb-core/co"
)

func TestGoesWaitBlocksUntilAllGoroutinesReturn(t *testing.T) {
	var g co.Goes
	var counter int32

	for i := 0; i < 20; i++ {
		g.Go(func() {
			atomic.AddInt32(&counter, 1)
		})
	}
	g.Wait()

	assert.Equal(t, int32(20), atomic.LoadInt32(&counter))
}
