// Package serializer handles encoding and decoding of request and response
// payloads in the supported formats (JSON, YAML), plus HTTP response helpers.
package serializer
