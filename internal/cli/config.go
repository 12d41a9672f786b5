package cli

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the lrgen CLI's persistent configuration: which discipline to
// build under by default and where to look for grammar files, loaded
// from a TOML file the way the teacher's own config and save data is
// loaded (toml.Unmarshal into a tagged struct).
type Config struct {
	Discipline   string `toml:"discipline"`
	GrammarPath  string `toml:"grammar_path"`
	ShowTrace    bool   `toml:"show_trace"`
	ShowConflict bool   `toml:"show_conflicts"`
}

// DefaultConfig returns the configuration used when no config file is
// present.
func DefaultConfig() Config {
	return Config{
		Discipline:   "LALR1",
		ShowTrace:    false,
		ShowConflict: true,
	}
}

// LoadConfig reads and decodes a TOML config file at path. A missing file
// is not an error: it returns DefaultConfig unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
