// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
)

// Sweeper is the slice of the generation cache the sweep worker needs.
type Sweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

// CacheSweepWorker periodically deletes expired generation cache rows.
// Reads already treat expired rows as misses, so the sweep only reclaims
// space; a failed or delayed sweep never affects correctness.
type CacheSweepWorker struct {
	sweeper  Sweeper
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewCacheSweepWorker creates a worker that calls sweeper.Sweep every
// interval. If interval is zero or negative it defaults to one hour.
// The worker is idle until Run is called.
func NewCacheSweepWorker(sweeper Sweeper, interval time.Duration, logger *logger.Logger) *CacheSweepWorker {
	if interval <= 0 {
		interval = time.Hour
	}

	return &CacheSweepWorker{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

// Run implements Worker. It stops any previously running sweep loop, then
// launches a background goroutine that sweeps every interval until Stop
// is called.
func (w *CacheSweepWorker) Run() {
	w.Stop()

	w.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if _, err := w.sweeper.Sweep(ctx); err != nil {
					w.logger.Warn().Err(err).Msg("cache sweep failed")
				}
			}
		}
	}()
}

// Stop cancels the sweep loop and blocks until the goroutine has fully
// exited. Safe to call when the worker is not running.
func (w *CacheSweepWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
