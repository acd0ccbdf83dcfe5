// Package workers runs the background workers of the mirror daemon as one
// unit: started in order before the HTTP surface comes up and stopped in
// reverse order after it has shut down.
package workers

import "context"

// Worker is a background component with an explicit lifecycle.
//
// Start must not block; long-running work belongs on goroutines owned by the
// worker and ended by Stop. The stream session is the main implementation.
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}
