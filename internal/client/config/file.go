package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/todokeeper/internal/flagx"
)

// FileConfig is a DTO used only for decoding config files. Pointer fields
// distinguish "absent" from "set to the zero value", so a file that only
// names data_file leaves the other defaults alone.
type FileConfig struct {
	DataFile *string `json:"data_file" toml:"data_file"`
	LogLevel *string `json:"log_level" toml:"log_level"`
	InMemory *bool   `json:"in_memory" toml:"in_memory"`

	AllowReset *bool `json:"allow_reset" toml:"allow_reset"`
}

// parseFile overlays cfg with the file named by -c/-config.
//
// Files ending in .toml are decoded as TOML, everything else as JSON.
// Read or decode errors panic; main recovers and reports them.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.DataFile != nil {
		cfg.DataFile = *fc.DataFile
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.InMemory != nil {
		cfg.InMemory = *fc.InMemory
	}
	if fc.AllowReset != nil {
		cfg.AllowReset = *fc.AllowReset
	}
}
