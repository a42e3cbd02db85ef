package server

import "context"

// Server is the lifecycle of the notes API server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a termination
	// signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests.
	Shutdown(ctx context.Context) error
}
