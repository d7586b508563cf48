// Package workers runs the server's background jobs next to the transports.
package workers

import "context"

// Worker is a background job with an explicit lifecycle. Start must not
// block; Stop waits until the job has exited and is safe to call twice.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
