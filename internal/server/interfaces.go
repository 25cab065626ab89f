package server

// Server is the lifecycle contract for the authority's transport servers.
// RunServer blocks until a shutdown signal arrives or the listener fails;
// Shutdown drains in-flight requests before releasing the listener.
type Server interface {
	RunServer()
	Shutdown()
}
