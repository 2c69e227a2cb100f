package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout bounds graceful drain on exit. Overridable in tests.
var shutdownTimeout = 15 * time.Second
