// Package config handles configuration management for richtext.
// Values are layered from the embedded defaults, an optional TOML file and
// RICHTEXT_* environment variables, later layers winning.
package config
