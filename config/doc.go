// Package config loads client configuration from an optional YAML file, an
// optional .env file and prefixed environment variables.
//
// Precedence, highest first: process environment, .env file, YAML file.
// Environment variables carry the prefix (default "X") and use underscores
// for nesting, so X_BEARER_TOKEN sets bearer_token and X_TLS_CA_FILE sets
// tls.ca_file:
//
//	var cfg MyConfig
//	err := config.Load(&cfg, config.WithConfigFile("xapi.yml"))
package config
