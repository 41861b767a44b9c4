// Package suggest is the caller-facing query surface: it runs the closure
// solver against a catalog, filters the raw near misses down to the ones
// worth showing (one or two missing ingredients, at most four entries), and
// renders human-readable explanations. The same FindRecipes function backs
// both the CLI and the HTTP handlers.
package suggest
