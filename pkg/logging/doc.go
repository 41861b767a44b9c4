// Package logging provides structured logging utilities for Larder components.
//
// It wraps the standard library slog package with project defaults for
// consistent logging across the CLI and the API server: JSON output to
// stderr, module/version context on every record, LOG_LEVEL environment
// configuration, and source location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("larderd", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// The LOG_LEVEL environment variable controls verbosity (debug, info, warn,
// error; case-insensitive). If unset, defaults to info.
package logging
