// Package server implements the HTTP server and HTTP handlers for the
// AgroCast dashboard backend. It wires together the HTTP routes,
// dependencies (MongoDB store, media client) and provides lifecycle
// helpers used by tests and the production binary.
package server
