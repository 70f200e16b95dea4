// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden by DMS_ prefixed environment
// variables and validated before use.
package config
