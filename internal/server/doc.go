// Package server runs the contacts HTTP server.
//
// It owns the server lifecycle: startup, waiting for SIGINT, SIGTERM or
// SIGQUIT, and graceful shutdown with a bounded drain period.
package server
