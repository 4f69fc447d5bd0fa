// Package reward implements the block reward schedule and epoch rollover
// described in spec §4.E, grounded on
// _examples/original_source/crates/consensus/reward/src/reward.rs.
package reward

// Unit ladder, spec §4.E "Units" (mirrors the original's SPECK..VRRB
// constants, each 1000x the previous).
const (
	Speck   uint64 = 1
	Triximo        = 1000 * Speck
	Nifada         = 1000 * Triximo
	Rima           = 1000 * Nifada
	Sitari         = 1000 * Rima
	Psigma         = 1000 * Sitari
	VRRB           = 1000 * Psigma
)

const (
	MaxRewardAdjustment    = 0.25
	BaselineReward         = 20
	MinBaselineReward      = 15
	MaxBaselineReward      = 25
	BlocksPerEpoch         = 30_000_000
	GenesisReward          = 400_000_000
)

// Reward tracks the current block reward and the epoch boundary at which
// it next adjusts.
type Reward struct {
	Epoch           uint64
	NextEpochBlock  uint64
	CurrentBlock    uint64
	Miner           string
	Amount          int64
}

// Genesis builds the epoch-1 reward record for the given miner, matching
// spec §4.E Reward::genesis.
func Genesis(miner string) *Reward {
	return &Reward{
		CurrentBlock:   0,
		Epoch:          1,
		NextEpochBlock: BlocksPerEpoch,
		Miner:          miner,
		Amount:         BaselineReward,
	}
}

// GenerateNextReward advances to the following block's reward record. If
// current_block+1 lands on an epoch boundary, the baseline amount is
// adjusted by adjustmentToNextEpoch/BlocksPerEpoch and clamped to
// [MinBaselineReward, MaxBaselineReward] and the new record has an empty
// Miner; otherwise an unchanged copy of the record is returned.
// Mirrors generate_next_reward.
func (r *Reward) GenerateNextReward(adjustmentToNextEpoch int64) *Reward {
	if (r.CurrentBlock+1)%BlocksPerEpoch != 0 {
		next := *r
		return &next
	}

	amount := r.Amount + adjustmentToNextEpoch/BlocksPerEpoch
	if amount < MinBaselineReward {
		amount = MinBaselineReward
	} else if amount > MaxBaselineReward {
		amount = MaxBaselineReward
	}

	return &Reward{
		CurrentBlock:   r.CurrentBlock,
		Epoch:          r.Epoch + 1,
		NextEpochBlock: r.NextEpochBlock + BlocksPerEpoch,
		Miner:          "",
		Amount:         amount,
	}
}

// Reset restores the reward amount to the baseline.
func (r *Reward) Reset() {
	r.Amount = BaselineReward
}

// ValidReward reports whether the amount falls within the baseline
// bounds. Mirrors valid_reward.
func (r *Reward) ValidReward() bool {
	return r.Amount >= MinBaselineReward && r.Amount <= MaxBaselineReward
}
