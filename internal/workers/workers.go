package workers

import (
	"context"
	"sync"
)

// Workers runs a set of workers side by side.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in its own goroutine and blocks until all of them
// returned, which they do once ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
