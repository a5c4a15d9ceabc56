// Package server runs the dev ingestion endpoint.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown.
package server
