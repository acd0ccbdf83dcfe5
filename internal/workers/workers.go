package workers

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// finisher is a worker that can end on its own, e.g. a stream session whose
// event stream was closed by the remote side.
type finisher interface {
	Done() <-chan struct{}
}

type Workers struct {
	workers []Worker
	started []Worker

	done     chan struct{}
	doneOnce sync.Once
	stopped  chan struct{}
	stopOnce sync.Once
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{
		workers: workers,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start starts every worker in order. When one fails, the ones already
// started are stopped and the error is returned.
func (w *Workers) Start(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := worker.Start(ctx); err != nil {
			w.Stop()
			return fmt.Errorf("starting worker %d: %w", i, err)
		}
		w.started = append(w.started, worker)

		if f, ok := worker.(finisher); ok {
			go w.watch(f)
		}
	}
	return nil
}

// Done is closed as soon as one started worker finishes before Stop.
func (w *Workers) Done() <-chan struct{} {
	return w.done
}

// Stop stops the started workers in reverse order.
func (w *Workers) Stop() {
	w.stopOnce.Do(func() { close(w.stopped) })

	for _, worker := range slices.Backward(w.started) {
		worker.Stop()
	}
	w.started = nil
}

func (w *Workers) watch(f finisher) {
	select {
	case <-f.Done():
		select {
		case <-w.stopped:
		default:
			w.doneOnce.Do(func() { close(w.done) })
		}
	case <-w.stopped:
	}
}
