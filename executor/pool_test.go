package executor

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolSubmit(t *testing.T) {
	pool := NewPool(Config{Workers: 2})
	defer pool.Close()

	done := make(chan struct{})
	err := pool.Submit(context.Background(), func() {
		close(done)
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
}

func TestPoolSubmitAfterClose(t *testing.T) {
	pool := NewPool(Config{Workers: 1})
	pool.Close()

	err := pool.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPoolCloseIdempotent(t *testing.T) {
	pool := NewPool(Config{Workers: 1})
	pool.Close()
	pool.Close()
}

func TestPoolCloseDrainsAcceptedWork(t *testing.T) {
	pool := NewPool(Config{Workers: 1, QueueDepth: 8})

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, pool.Submit(context.Background(), func() {
			ran.Add(1)
		}))
	}

	pool.Close()
	assert.Equal(t, int32(5), ran.Load())
}

// A panicking task must not take its worker goroutine down.
func TestPoolSurvivesPanickingTask(t *testing.T) {
	pool := NewPool(Config{Workers: 1})
	defer pool.Close()

	require.NoError(t, pool.Submit(context.Background(), func() {
		panic("boom")
	}))

	done := make(chan struct{})
	require.NoError(t, pool.Submit(context.Background(), func() {
		close(done)
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive panic")
	}
}

func TestPoolSubmitContextDoneWhileFull(t *testing.T) {
	pool := NewPool(Config{Workers: 1, QueueDepth: 1})

	gate := make(chan struct{})
	defer pool.Close()
	defer close(gate)

	// Occupy the single worker and then the single queue slot.
	require.NoError(t, pool.Submit(context.Background(), func() {
		<-gate
	}))
	require.NoError(t, pool.Submit(context.Background(), func() {}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.Submit(ctx, func() {})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPoolMaxInFlight(t *testing.T) {
	pool := NewPool(Config{Workers: 1, MaxInFlight: 1})

	gate := make(chan struct{})
	defer pool.Close()
	defer close(gate)

	require.NoError(t, pool.Submit(context.Background(), func() {
		<-gate
	}))

	// The in-flight cap of 1 is held by the gated task.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := pool.Submit(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPoolSubmitRateLimit(t *testing.T) {
	pool := NewPool(Config{Workers: 1, SubmitsPerSec: 1000})
	defer pool.Close()

	var ran atomic.Int32
	done := make(chan struct{})
	for i := 0; i < 3; i++ {
		require.NoError(t, pool.Submit(context.Background(), func() {
			if ran.Add(1) == 3 {
				close(done)
			}
		}))
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("rate-limited tasks did not run")
	}
}
