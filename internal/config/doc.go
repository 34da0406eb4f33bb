// Package config loads nbserve configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// NBSERVE_* environment variables. Command-line flags are applied on top by
// the CLI. The merged values are decoded with mapstructure, so durations may
// be written as "30s" and numbers may be quoted.
package config
