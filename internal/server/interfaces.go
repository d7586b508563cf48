package server

// Server runs the configured transports until a stop signal arrives.
type Server interface {
	// RunServer blocks until the process is asked to stop and every
	// transport has drained.
	RunServer()

	// Shutdown stops every transport without waiting for a signal.
	Shutdown()
}
