// Package config loads sqlfront's CLI configuration by layering koanf
// providers, the way the teacher's internal/cli/config package layers
// file, env, and flag providers over a shared koanf instance.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileNames are the config file names searched for in the current
// directory, matching the teacher's leapsql.yaml/.yml pair.
var FileNames = []string{"sqlfront.yaml", "sqlfront.yml"}

// EnvPrefix is stripped (and the remainder lower-cased)
// from environment variables that override config values, e.g.
// SQLFRONT_DIALECT=postgresql.
const EnvPrefix = "SQLFRONT_"

// Config holds every CLI-level setting orthogonal to the parser core's own
// Options; it is unmarshalled from the layered koanf instance.
type Config struct {
	Dialect        string `koanf:"dialect"`
	RecursionLimit int    `koanf:"recursion_limit"`
	Unescape       bool   `koanf:"unescape"`
	TrailingCommas bool   `koanf:"trailing_commas"`
	Output         string `koanf:"output"`
	LogLevel       string `koanf:"log_level"`
}

// defaults mirrors the built-in confmap.Provider layer the teacher's loader
// installs before any file is read, so a missing config file still yields a
// fully populated Config.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"dialect":         "generic",
		"recursion_limit": 50,
		"unescape":        true,
		"trailing_commas": false,
		"output":          "text",
		"log_level":       "info",
	}
}

// Load builds a Config by layering, lowest to highest priority: built-in
// defaults, a YAML config file, SQLFRONT_ environment variables, and CLI
// flags already parsed onto flags. dir may name either a directory searched
// for FileNames or a path to a specific YAML file (e.g. from --config). A
// missing config file is not an error, matching the teacher's LoadFromDir
// contract.
func Load(dir string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	if path := findConfigFile(dir); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}
	return &cfg, nil
}

// findConfigFile resolves dir to a concrete config file path: if dir names
// an existing file directly (as --config does), that file is used as-is;
// otherwise each of FileNames is tried inside dir (or the working directory
// when dir is empty).
func findConfigFile(dir string) string {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			return dir
		}
	}
	for _, name := range FileNames {
		path := name
		if dir != "" {
			path = dir + string(os.PathSeparator) + name
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
