package server

// Server is the lifecycle of the contacts server process.
type Server interface {
	// RunServer serves requests until a termination signal arrives or the
	// listener fails, then drains in-flight requests.
	RunServer()

	// Shutdown stops accepting connections and waits for active requests.
	Shutdown()
}
