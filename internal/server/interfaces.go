package server

import "context"

// Server defines the lifecycle contract of the daemon.
//
// RunServer blocks until ctx is cancelled, a stop signal arrives or a
// worker ends, and then shuts everything down.
type Server interface {
	RunServer(ctx context.Context) error
	Shutdown()
}

// Lifecycle is the set of background workers run alongside the HTTP server.
//
// Done is closed when a worker ends on its own. The server treats that as
// fatal and shuts down.
type Lifecycle interface {
	Start(ctx context.Context) error
	Stop()
	Done() <-chan struct{}
}
