// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that executes the worker's loop.
//
// Implementations are expected to block until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Expirer drops a session whose token is past its expiry.
type Expirer interface {
	ExpireIfStale(ctx context.Context, now time.Time) (bool, error)
}
