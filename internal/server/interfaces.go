package server

// Server is the lifecycle contract for the transport servers managed by this
// package. RunServer blocks until a stop signal arrives or the server fails;
// Shutdown stops accepting new connections and drains the in-flight ones.
type Server interface {
	RunServer()
	Shutdown()
}
