package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenesisReward(t *testing.T) {
	r := Genesis("miner-1")
	assert.Equal(t, uint64(1), r.Epoch)
	assert.Equal(t, uint64(BlocksPerEpoch), r.NextEpochBlock)
	assert.Equal(t, int64(BaselineReward), r.Amount)
	assert.True(t, r.ValidReward())
}

func TestGenerateNextRewardMidEpochIsUnchanged(t *testing.T) {
	r := Genesis("miner-1")
	r.CurrentBlock = 5

	next := r.GenerateNextReward(BlocksPerEpoch)
	assert.Equal(t, r.Epoch, next.Epoch)
	assert.Equal(t, r.Amount, next.Amount)
	assert.Equal(t, r.NextEpochBlock, next.NextEpochBlock)
}

func TestGenerateNextRewardEpochRollover(t *testing.T) {
	r := Genesis("miner-1")
	r.CurrentBlock = BlocksPerEpoch - 1

	next := r.GenerateNextReward(BlocksPerEpoch)
	assert.Equal(t, uint64(2), next.Epoch)
	assert.Equal(t, uint64(2*BlocksPerEpoch), next.NextEpochBlock)
	assert.Equal(t, int64(BaselineReward+1), next.Amount)
	assert.True(t, next.ValidReward())
}

func TestGenerateNextRewardClampsToBounds(t *testing.T) {
	r := Genesis("miner-1")
	r.CurrentBlock = BlocksPerEpoch - 1
	r.Amount = MaxBaselineReward

	next := r.GenerateNextReward(BlocksPerEpoch)
	assert.Equal(t, int64(MaxBaselineReward), next.Amount)

	r2 := Genesis("miner-1")
	r2.CurrentBlock = BlocksPerEpoch - 1
	r2.Amount = MinBaselineReward

	next2 := r2.GenerateNextReward(-10 * BlocksPerEpoch)
	assert.Equal(t, int64(MinBaselineReward), next2.Amount)
}

func TestResetRestoresBaseline(t *testing.T) {
	r := Genesis("miner-1")
	r.Amount = MaxBaselineReward
	r.Reset()
	assert.Equal(t, int64(BaselineReward), r.Amount)
}

func TestValidRewardRejectsOutOfBounds(t *testing.T) {
	r := Genesis("miner-1")
	r.Amount = MinBaselineReward - 1
	assert.False(t, r.ValidReward())

	r.Amount = MaxBaselineReward + 1
	assert.False(t, r.ValidReward())
}
