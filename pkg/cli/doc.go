// Package cli implements the larder command line interface: recipe
// suggestion queries, catalog validation, and the API server, with
// JSON or YAML output.
package cli
