// Package config provides configuration loading, merging, and validation
// facilities for the auctions API.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The resulting value is
// built once at startup and handed to every component explicitly; nothing in
// this package is read through global state afterwards.
package config
