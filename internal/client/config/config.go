package config

import "os"

// Config holds runtime settings for the todo CLI.
//
// Fields:
//   - DataFile: path of the JSON document holding users, lists and tasks.
//   - LogLevel: minimum level written to stderr (debug, info, warn, error).
//   - InMemory: keep the document in memory only; nothing touches disk.
//   - AllowReset: enable "reset all", which deletes every user's data.
type Config struct {
	DataFile   string
	LogLevel   string
	InMemory   bool
	AllowReset bool
}

const DefaultDataFile = "todo_data.json"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataFile = DefaultDataFile
	c.LogLevel = "warn"
	c.InMemory = false
	c.AllowReset = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if one is named on the command line) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
