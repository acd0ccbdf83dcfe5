// Package server runs the mirror daemon: the background workers and the
// presentation HTTP server, with signal handling and graceful shutdown.
package server
