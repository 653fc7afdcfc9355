// Package config loads utl configuration.
//
// Values come from a YAML file, a .env file and UTL_-prefixed environment
// variables, in increasing order of precedence. Environment keys map onto
// nested config keys by splitting on underscores, so
// UTL_STRINGS_DEFAULT_MATCH sets strings.default_match.
//
//	cfg, err := config.Load(config.WithConfigFile("utl.yml"))
//
// Load applies defaults and validates the result with struct tags.
package config
