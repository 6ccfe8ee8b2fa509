// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// three sources into one [StructuredConfig].
package config
