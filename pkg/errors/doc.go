// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeMalformedCatalog,
//	    "failed to parse recipe catalog",
//	    parseErr,
//	    map[string]interface{}{
//	        "path":  catalogPath,
//	        "entry": entryIndex,
//	    },
//	)
package errors
