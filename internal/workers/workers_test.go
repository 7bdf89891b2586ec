// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Dev-vesper/notepad/internal/config"
	"github.com/Dev-vesper/notepad/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that counts Run calls and blocks until its context is cancelled.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func runWithTimeout(t *testing.T, ws *Workers, cancelAfter time.Duration) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	time.Sleep(cancelAfter)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Workers.Run did not return after the context was cancelled")
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	runWithTimeout(t, ws, 20*time.Millisecond)

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should return immediately on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	storage := newTestStorage(t)

	ws := NewWorkers(storage, config.Workers{}, logger.Nop())
	if ws.Len() != 0 {
		t.Errorf("expected no workers with zero interval, got %d", ws.Len())
	}

	ws = NewWorkers(storage, config.Workers{CheckInterval: time.Minute}, logger.Nop())
	if ws.Len() != 1 {
		t.Errorf("expected the document check worker, got %d workers", ws.Len())
	}
}
