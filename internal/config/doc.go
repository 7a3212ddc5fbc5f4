// Package config handles configuration loading, parsing, and validation
// from an optional YAML file and PIG_-prefixed environment variables. It
// provides type-safe access to the settings the server, its logger and the
// database gateway need.
package config
