package handler

import (
	"sync/atomic"

	"github.com/routelog/routelog/core"
)

// Stats tracks chain dispatch statistics
type Stats struct {
	// Separate atomic counters per severity
	ClaimedWarning      uint64
	ClaimedError        uint64
	ClaimedFatal        uint64
	ClaimedUnclassified uint64
	// DroppedTotal counts messages that reached the end of the chain unclaimed
	DroppedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementClaimed atomically increments the claim counter for a severity
func (s *Stats) IncrementClaimed(severity core.Severity) {
	switch severity {
	case core.Warning:
		atomic.AddUint64(&s.ClaimedWarning, 1)
	case core.Error:
		atomic.AddUint64(&s.ClaimedError, 1)
	case core.FatalError:
		atomic.AddUint64(&s.ClaimedFatal, 1)
	case core.Unclassified:
		atomic.AddUint64(&s.ClaimedUnclassified, 1)
	}
}

// IncrementDropped atomically increments the end-of-chain drop counter
func (s *Stats) IncrementDropped() {
	atomic.AddUint64(&s.DroppedTotal, 1)
}

// GetClaimed returns the claim count for a severity
func (s *Stats) GetClaimed(severity core.Severity) uint64 {
	switch severity {
	case core.Warning:
		return atomic.LoadUint64(&s.ClaimedWarning)
	case core.Error:
		return atomic.LoadUint64(&s.ClaimedError)
	case core.FatalError:
		return atomic.LoadUint64(&s.ClaimedFatal)
	case core.Unclassified:
		return atomic.LoadUint64(&s.ClaimedUnclassified)
	default:
		return 0
	}
}

// GetDropped returns the end-of-chain drop count
func (s *Stats) GetDropped() uint64 {
	return atomic.LoadUint64(&s.DroppedTotal)
}

// GetTotalClaimed returns the total claims across all severities
func (s *Stats) GetTotalClaimed() uint64 {
	return atomic.LoadUint64(&s.ClaimedWarning) +
		atomic.LoadUint64(&s.ClaimedError) +
		atomic.LoadUint64(&s.ClaimedFatal) +
		atomic.LoadUint64(&s.ClaimedUnclassified)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ClaimedWarning, 0)
	atomic.StoreUint64(&s.ClaimedError, 0)
	atomic.StoreUint64(&s.ClaimedFatal, 0)
	atomic.StoreUint64(&s.ClaimedUnclassified, 0)
	atomic.StoreUint64(&s.DroppedTotal, 0)
}

// Snapshot is a point-in-time copy of chain statistics
type Snapshot struct {
	Claimed      map[core.Severity]uint64
	DroppedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Claimed: map[core.Severity]uint64{
			core.Warning:      s.GetClaimed(core.Warning),
			core.Error:        s.GetClaimed(core.Error),
			core.FatalError:   s.GetClaimed(core.FatalError),
			core.Unclassified: s.GetClaimed(core.Unclassified),
		},
		DroppedTotal: s.GetDropped(),
	}
}
