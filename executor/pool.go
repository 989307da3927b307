package executor

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds pool sizing and admission limits.
type Config struct {
	// Workers is the number of worker goroutines.
	// If 0, defaults to runtime.GOMAXPROCS(0).
	Workers int

	// QueueDepth is the buffer of the work channel.
	// If 0, defaults to 2x Workers.
	QueueDepth int

	// MaxInFlight caps tasks that are accepted but not yet finished.
	// If 0, only the queue buffer provides backpressure.
	MaxInFlight int64

	// SubmitsPerSec rate-limits task admission.
	// If 0, unlimited.
	SubmitsPerSec float64
}

// Compile time check to ensure Pool satisfies the Executor interface.
var _ Executor = (*Pool)(nil)

// Pool manages a fixed set of goroutines for blocking/CPU-bound tasks.
// Keeping the workers resident avoids spawning a goroutine per computation
// under load, and keeps long-running iteration off the caller's goroutine.
type Pool struct {
	workCh   chan func()
	stopCh   chan struct{}
	wg       sync.WaitGroup
	closed   atomic.Bool
	submitMu sync.RWMutex

	inflight *semaphore.Weighted // nil if unlimited
	limiter  *rate.Limiter       // nil if unlimited
}

// NewPool creates a pool with cfg.Workers resident goroutines.
//
// Sizing guidance: square-root iteration is pure CPU work, so
// Workers = runtime.GOMAXPROCS(0) (the default) is usually right.
func NewPool(cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.QueueDepth <= 0 {
		cfg.QueueDepth = cfg.Workers * 2
	}

	p := &Pool{
		workCh: make(chan func(), cfg.QueueDepth),
		stopCh: make(chan struct{}),
	}

	if cfg.MaxInFlight > 0 {
		p.inflight = semaphore.NewWeighted(cfg.MaxInFlight)
	}
	if cfg.SubmitsPerSec > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(cfg.SubmitsPerSec), int(cfg.SubmitsPerSec)+1)
	}

	p.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go p.worker()
	}

	return p
}

// worker processes tasks from the work channel until the pool stops.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopCh:
			// Drain accepted work before exiting.
			for {
				select {
				case task, ok := <-p.workCh:
					if !ok {
						return
					}
					p.run(task)
				default:
					return
				}
			}
		case task, ok := <-p.workCh:
			if !ok {
				return
			}
			p.run(task)
		}
	}
}

// run executes one task, recovering panics so a bad task cannot take a
// worker goroutine down with it. Callers that need to observe a panic do so
// inside their own closure.
func (p *Pool) run(task func()) {
	defer func() {
		if p.inflight != nil {
			p.inflight.Release(1)
		}
		_ = recover()
	}()

	task()
}

// Submit enqueues task and returns once it is accepted.
//
// Error conditions:
//   - ErrClosed if the pool has been closed
//   - ctx.Err() if the context is done before admission completes
func (p *Pool) Submit(ctx context.Context, task func()) error {
	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	if p.closed.Load() {
		return ErrClosed
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if p.inflight != nil {
		if err := p.inflight.Acquire(ctx, 1); err != nil {
			return err
		}
	}

	select {
	case p.workCh <- task:
		return nil
	case <-p.stopCh:
		if p.inflight != nil {
			p.inflight.Release(1)
		}
		return ErrClosed
	case <-ctx.Done():
		if p.inflight != nil {
			p.inflight.Release(1)
		}
		return ctx.Err()
	}
}

// Close shuts the pool down gracefully. Accepted tasks are drained;
// subsequent Submits return ErrClosed. Close is idempotent.
func (p *Pool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}

	p.submitMu.Lock()
	close(p.stopCh)
	close(p.workCh)
	p.submitMu.Unlock()

	p.wg.Wait()
}
