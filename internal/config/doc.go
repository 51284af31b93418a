// Package config provides configuration loading, merging, and validation
// facilities for the server and the command-line client.
//
// Server configuration is assembled from several sources; later sources
// override earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (-c / CONFIG)
//  3. Environment variables, including those loaded from a .env file
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
