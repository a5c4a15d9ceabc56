package server

import "context"

// Server defines the lifecycle contract for the servers managed by this
// package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a termination
	// signal arrives, then shuts down gracefully. A failure to listen is
	// returned as an error.
	RunServer(ctx context.Context) error
}
