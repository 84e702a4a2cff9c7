package tracker

import (
	"context"
	"sync"
)

// Ack is closed once a submitted write has finished, successfully or not.
// Callers are free to ignore it.
type Ack <-chan struct{}

var doneAck = func() Ack {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Wait blocks until the write finished or ctx is done.
func (a Ack) Wait(ctx context.Context) error {
	if a == nil {
		return nil
	}
	select {
	case <-a:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Writer runs persistence writes one at a time, in submission order, on a
// single goroutine. It is the only writer of the tracker records.
type Writer struct {
	ctx   context.Context
	mu    sync.Mutex
	queue chan writeJob
	done  chan struct{}

	closed bool
}

type writeJob struct {
	fn  func(ctx context.Context)
	ack chan struct{}
}

// NewWriter starts a writer. Writes run with ctx, which should outlive the
// actions that submit them.
func NewWriter(ctx context.Context) *Writer {
	w := &Writer{
		ctx:   ctx,
		queue: make(chan writeJob, 64),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Writer) run() {
	defer close(w.done)
	for job := range w.queue {
		job.fn(w.ctx)
		close(job.ack)
	}
}

// Submit queues fn. Once the writer is closed fn runs inline.
func (w *Writer) Submit(fn func(ctx context.Context)) Ack {
	ack := make(chan struct{})
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		fn(w.ctx)
		close(ack)
		return ack
	}
	w.queue <- writeJob{fn: fn, ack: ack}
	w.mu.Unlock()
	return ack
}

// Flush waits for every write submitted so far.
func (w *Writer) Flush(ctx context.Context) error {
	return w.Submit(func(context.Context) {}).Wait(ctx)
}

// Close stops accepting queued writes and waits for the queue to drain.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
