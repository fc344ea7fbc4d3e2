package profile

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const DefaultSyncInterval = time.Minute

// SyncResult reports one highscore write attempt.
type SyncResult struct {
	Nickname  string
	Candidate int
	Stored    int
	Wrote     bool
	Final     bool
	Err       error
}

// Syncer periodically persists the best candidate offered by the game loop.
// The loop only calls Offer and drains Results; all store writes happen on
// the syncer goroutine.
type Syncer struct {
	target   *Highscores
	interval time.Duration
	results  chan SyncResult

	offered atomic.Int64

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewSyncer(target *Highscores, interval time.Duration) *Syncer {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	s := &Syncer{
		target:   target,
		interval: interval,
		results:  make(chan SyncResult, 8),
		done:     make(chan struct{}),
	}
	s.offered.Store(-1)
	return s
}

// Offer records a candidate highscore. Only the largest offer is kept.
func (s *Syncer) Offer(candidate int) {
	if s == nil || candidate < 0 {
		return
	}
	v := int64(candidate)
	for {
		cur := s.offered.Load()
		if v <= cur {
			return
		}
		if s.offered.CompareAndSwap(cur, v) {
			return
		}
	}
}

func (s *Syncer) Results() <-chan SyncResult {
	return s.results
}

// Start launches the sync goroutine. It runs until ctx is cancelled or Stop
// is called, and flushes the last offer once on the way out.
func (s *Syncer) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		s.cancel = cancel
		go s.run(ctx)
	})
}

// Stop cancels the sync goroutine and waits for the final flush.
func (s *Syncer) Stop() {
	s.stopOnce.Do(func() {
		// Blocks a later Start.
		s.startOnce.Do(func() {})
		if s.cancel == nil {
			return
		}
		s.cancel()
		<-s.done
	})
}

func (s *Syncer) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if res, ok := s.sync(); ok {
				res.Final = true
				s.deliver(res)
			}
			return
		case <-ticker.C:
			if res, ok := s.sync(); ok {
				s.deliver(res)
			}
		}
	}
}

// sync writes the current offer. ok is false when nothing was offered.
func (s *Syncer) sync() (SyncResult, bool) {
	candidate := s.offered.Load()
	if candidate < 0 {
		return SyncResult{}, false
	}
	res := SyncResult{Nickname: s.target.Nickname(), Candidate: int(candidate)}
	res.Wrote, res.Stored, res.Err = s.target.ProposeWrite(int(candidate))
	return res, true
}

func (s *Syncer) deliver(res SyncResult) {
	select {
	case s.results <- res:
	default:
		// Drop when nobody drains; the next result carries the same state.
	}
}
