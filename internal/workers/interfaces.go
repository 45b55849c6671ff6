// Package workers manages the background jobs of the contact-keeper client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one unit.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: the job runs on its own goroutine until ctx is
// cancelled or Stop is called. Stop waits for the job to finish and is safe to
// call on a worker that was never started.
//
// Example implementation:
//
//	type reconcileWorker struct{ cancel context.CancelFunc }
//
//	func (w *reconcileWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go w.loop(ctx)
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
