// Package http implements the presentation HTTP surface of the mirror.
//
// It serves the display-ready notification and device snapshots, the command
// journal and build metadata as JSON, and streams presenter events to browser
// clients over a websocket. Request tracing, access logging and response
// compression are handled here before requests reach the handlers.
package http
