// Package config provides configuration loading, merging, and validation
// for the contact-keeper client and the contacts server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The entry points are [GetServerConfig] and [GetClientConfig]; both return
// a validated view holding only the fields their process uses.
package config
