// Package http implements the REST transport of the reference contacts
// server.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, response compression, and resolution of the
// X-UUID identity header are handled here before requests reach the
// service layer.
package http
