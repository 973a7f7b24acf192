// Package cli turns command-line arguments into a config.Config, layering
// explicitly set flags over the environment and an optional config file.
package cli
