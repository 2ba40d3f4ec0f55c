// Package config loads the ledctl client configuration.
//
// Values are layered, later sources winning: the embedded defaults, the user
// configuration file (TOML or YAML), LEDCTL_ environment variables and
// finally the overrides collected from command-line flags.
package config
