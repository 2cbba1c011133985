package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SessionEvictor removes idle view sessions.
type SessionEvictor interface {
	EvictIdle() int
}

// Counter accumulates evicted sessions.
type Counter interface {
	Add(float64)
}

// SessionJanitor periodically evicts idle view sessions.
type SessionJanitor struct {
	store     SessionEvictor
	interval  time.Duration
	evictions Counter
	logger    *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSessionJanitor constructs the janitor. A nil counter is allowed.
func NewSessionJanitor(store SessionEvictor, interval time.Duration, evictions Counter, logger *slog.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionJanitor{
		store:     store,
		interval:  interval,
		evictions: evictions,
		logger:    logger,
	}
}

// Start launches the sweep loop. Calling Start twice is a no-op.
func (j *SessionJanitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.loop(runCtx)
}

// Stop waits for the sweep loop to finish.
func (j *SessionJanitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *SessionJanitor) loop(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *SessionJanitor) sweep() {
	removed := j.store.EvictIdle()
	if removed == 0 {
		return
	}
	if j.evictions != nil {
		j.evictions.Add(float64(removed))
	}
	j.logger.Info("idle view sessions evicted", slog.Int("count", removed))
}
