// Package server provides the HTTP server shared by Larder's API surfaces:
// routing, middleware (request IDs, rate limiting, panic recovery, request
// logging, Prometheus RED metrics), health and readiness endpoints, and
// structured error responses. Domain handlers are injected via options so
// this package stays free of domain dependencies.
package server
