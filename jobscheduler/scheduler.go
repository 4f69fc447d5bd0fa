// Package jobscheduler provisions the three job_pool lanes described in
// spec §4.D ("local", "remote", "forwarding") and computes the
// log-compressed, min-max normalized backpressure signal peers exchange to
// throttle each other. Grounded on the original
// crates/consensus/job_scheduler/src/lib.rs, which sizes lanes off
// num_cpus::get() and tracks peer latency samples in a bounded LRU.
package jobscheduler

import (
	"math"
	"runtime"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/vrrb-chain/vrrb-core/jobpool"
	"github.com/vrrb-chain/vrrb-core/primitives"
)

// Lane provisioning ratios and fixed headroom, spec §4.D "Lane sizing":
// local and remote each get 40% of hardware parallelism plus 4 extra
// workers, forwarding gets 20% plus 2.
const (
	localRatio      = 0.40
	remoteRatio     = 0.40
	forwardingRatio = 0.20

	localHeadroom      = 4
	remoteHeadroom     = 4
	forwardingHeadroom = 2

	defaultKeepAlive = 30 * time.Second
	peerCacheSize    = 512
)

// Scheduler owns the three job_pool lanes and the peer backpressure cache
// for one node.
type Scheduler struct {
	selfID primitives.NodeID

	Local      *jobpool.Pool
	Remote     *jobpool.Pool
	Forwarding *jobpool.Pool

	peerValues *lru.Cache
}

// New builds a Scheduler sized off runtime.NumCPU(), matching spec §4.D's
// lane-sizing formula.
func New(selfID primitives.NodeID) *Scheduler {
	parallelism := runtime.NumCPU()

	local := laneSize(parallelism, localRatio, localHeadroom)
	remote := laneSize(parallelism, remoteRatio, remoteHeadroom)
	forwarding := laneSize(parallelism, forwardingRatio, forwardingHeadroom)

	cache, _ := lru.New(peerCacheSize)

	return &Scheduler{
		selfID:     selfID,
		Local:      jobpool.Build(1, local, 0, defaultKeepAlive).WithName("local"),
		Remote:     jobpool.Build(1, remote, 0, defaultKeepAlive).WithName("remote"),
		Forwarding: jobpool.Build(1, forwarding, 0, defaultKeepAlive).WithName("forwarding"),
		peerValues: cache,
	}
}

func laneSize(parallelism int, ratio float64, headroom int) int {
	n := int(math.Ceil(float64(parallelism)*ratio)) + headroom
	if n < 1 {
		n = 1
	}
	return n
}

// AvgCompletionTimes returns the mean recent completion duration of each
// lane, keyed by lane name, matching spec §4.D's per-lane telemetry.
func (s *Scheduler) AvgCompletionTimes() map[string]time.Duration {
	return map[string]time.Duration{
		"local":      s.Local.AvgCompletionTime(),
		"remote":     s.Remote.AvgCompletionTime(),
		"forwarding": s.Forwarding.AvgCompletionTime(),
	}
}

// RecordPeerBackpressure stores a peer-reported raw latency sample (in
// milliseconds) in the bounded LRU cache, evicting the least recently used
// peer once peerCacheSize is exceeded.
func (s *Scheduler) RecordPeerBackpressure(peerID primitives.NodeID, valueMillis float64) {
	s.peerValues.Add(peerID, valueMillis)
}

// BackPressure is one peer's normalized backpressure signal.
type BackPressure struct {
	PeerID primitives.NodeID
	Value  float64
}

// CalculateBackPressure combines this node's local-lane average completion
// time with every recorded peer sample, log10-compresses the combined set to tame
// outliers, then min-max normalizes into [0, 1], per spec §4.D and §8
// scenario 6. The result is sorted ascending by normalized value.
func (s *Scheduler) CalculateBackPressure() []BackPressure {
	type sample struct {
		peerID primitives.NodeID
		raw    float64
	}

	samples := make([]sample, 0, s.peerValues.Len()+1)

	selfMillis := float64(s.AvgCompletionTimes()["local"].Microseconds()) / 1000.0
	samples = append(samples, sample{peerID: s.selfID, raw: selfMillis})

	for _, key := range s.peerValues.Keys() {
		v, ok := s.peerValues.Get(key)
		if !ok {
			continue
		}
		samples = append(samples, sample{peerID: key.(primitives.NodeID), raw: v.(float64)})
	}

	compressed := make([]float64, len(samples))
	for i, s := range samples {
		compressed[i] = log10Compress(s.raw)
	}

	min, max := compressed[0], compressed[0]
	for _, v := range compressed {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	result := make([]BackPressure, len(samples))
	for i, smp := range samples {
		result[i] = BackPressure{PeerID: smp.peerID, Value: normalize(compressed[i], min, max)}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Value < result[j].Value })
	return result
}

// log10Compress maps a non-negative raw latency sample onto a compressed
// scale; log10(1) = 0 floors the result at zero for sub-millisecond values.
func log10Compress(raw float64) float64 {
	if raw < 0 {
		raw = 0
	}
	return math.Log10(raw + 1)
}

// normalize performs min-max normalization, returning 0 for a degenerate
// (all-equal) input set rather than dividing by zero.
func normalize(v, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (v - min) / (max - min)
}
