// Package config loads runtime configuration for the todo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config; ".toml" files are
//     read as TOML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-f string   path of the data file (default "todo_data.json")
//	-l string   log level: debug, info, warn, error (default "info")
//	-memory     keep data in memory only
//
// # File schema
//
//	{"data_file": "/home/me/.todo.json", "log_level": "debug", "in_memory": false}
//
// or, in TOML:
//
//	data_file = "/home/me/.todo.json"
//	log_level = "debug"
//
// Note: This package does not read environment variables.
package config
