package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// Implementations block in [RunServer] until shutdown is requested or the
// listener fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns nil after a signal-triggered graceful shutdown.
	RunServer() error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
