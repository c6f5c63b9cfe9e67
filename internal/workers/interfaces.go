// Package workers provides background jobs that run next to the HTTP server
// for the whole lifetime of the process.
//
// Every job implements Worker; the Workers aggregate starts them together
// and waits until the shared context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// has nothing left to do.
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
