// Package api assembles the deployable API server: catalog store, suggestion
// handlers, HTTP server, and lifecycle wiring.
package api
