// Package config provides configuration loading, merging, and validation
// facilities for the order-intake binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] for the upload client and
// [GetServerConfig] for the dev ingestion server.
package config
