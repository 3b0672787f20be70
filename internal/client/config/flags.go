package config

import (
	"flag"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-f string   path of the data file
//	-l string   log level
//	-memory     keep data in memory only
//	-allow-reset  enable "reset all"
//
// Arguments that belong to other flag sets (-c) are filtered out first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-f", "-l"}, "-memory", "-allow-reset")

	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "path of the data file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.InMemory, "memory", cfg.InMemory, "keep data in memory only")
	fs.BoolVar(&cfg.AllowReset, "allow-reset", cfg.AllowReset, "allow 'reset all' to delete every user's data")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
