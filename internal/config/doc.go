// Package config provides configuration loading, merging, and validation
// facilities for the anteater server and its CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//  4. Local-development defaults
//
// The main entry points are [GetStructuredConfig] for the server binary and
// [GetEnvConfig] for tools that manage their own command-line arguments.
package config
