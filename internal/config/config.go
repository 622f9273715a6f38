// Package config loads the interpreter's ambient settings — library path,
// REPL history file, memory guard, and trace flag — from defaults, an
// optional YAML file, and BOK_-prefixed environment variables, in that
// order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the settings every bok entry point (REPL, runner, importer)
// reads at startup.
type Config struct {
	LibraryPath string `koanf:"library_path"`
	HistoryFile string `koanf:"history_file"`
	MemLimit    int    `koanf:"mem_limit"`
	Trace       bool   `koanf:"trace"`
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bok_history"
	}
	return filepath.Join(home, ".bok_history")
}

// findFile returns the first of "bok.yaml"/"bok.yml" that exists in the
// current working directory, or "" if neither does.
func findFile() string {
	for _, name := range []string{"bok.yaml", "bok.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds a Config from defaults, an optional explicit YAML file (or,
// if cfgFile is empty, whichever of bok.yaml/bok.yml is found in the
// working directory), and BOK_-prefixed environment variables.
func Load(cfgFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"library_path": ".",
		"history_file": defaultHistoryFile(),
		"mem_limit":    0,
		"trace":        false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	path := cfgFile
	if path == "" {
		path = findFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("BOK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BOK_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	return &cfg, nil
}
