// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (JSON or YAML, chosen by extension)
//  3. .env file and environment variables
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the raw merged values
// and [GetClientConfig] for the validated runtime view.
package config
