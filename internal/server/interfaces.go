package server

// Server runs the notepad HTTP API together with the background workers.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then shuts
	// down gracefully.
	RunServer()

	// Shutdown stops the listener and waits for in-flight requests.
	Shutdown()
}
