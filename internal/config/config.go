// Package config loads navigator settings from a config file, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
	"github.com/kk-code-lab/vfsnav/internal/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. VFSNAV_LOG_LEVEL.
const EnvPrefix = "VFSNAV"

const (
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyLogOutput       = "log.output"
	KeyStart           = "start"
	KeyRetainMutations = "mutations.retain"
	KeyTree            = "tree"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":        KeyLogLevel,
	"log-format":       KeyLogFormat,
	"log-output":       KeyLogOutput,
	"start":            KeyStart,
	"retain-mutations": KeyRetainMutations,
}

// Config holds all navigator configuration.
type Config struct {
	Log logging.Config

	// StartPath is the directory a new session opens in.
	StartPath string
	// RetainMutations keeps created/deleted files for the whole session
	// instead of dropping them when leaving a directory.
	RetainMutations bool
	// Tree declares the virtual directories. Empty means fs.DefaultTree.
	Tree []fsutil.Directory

	// File is the config file that was read, if any.
	File string
}

// RegisterFlags adds the flags Load knows how to bind.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("log-output", "", "log destination: stderr, stdout or a file path")
	flags.String("start", "/", "directory to open first")
	flags.Bool("retain-mutations", false, "keep created and deleted files when leaving a directory")
}

// Load reads configuration with the precedence flags > environment > file >
// defaults. configFile may be empty; flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogOutput, logging.DefaultOutputPath())
	v.SetDefault(KeyStart, fsutil.Root)
	v.SetDefault(KeyRetainMutations, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{
		Log: logging.Config{
			Level:      v.GetString(KeyLogLevel),
			Format:     v.GetString(KeyLogFormat),
			OutputPath: v.GetString(KeyLogOutput),
		},
		StartPath:       v.GetString(KeyStart),
		RetainMutations: v.GetBool(KeyRetainMutations),
		File:            v.ConfigFileUsed(),
	}

	if v.IsSet(KeyTree) {
		if err := v.UnmarshalKey(KeyTree, &cfg.Tree); err != nil {
			return nil, fmt.Errorf("decode %s: %w", KeyTree, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at session start.
func (c *Config) Validate() error {
	start, err := fsutil.Normalize(c.StartPath)
	if err != nil {
		return fmt.Errorf("config %s: %w", KeyStart, err)
	}
	c.StartPath = start

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config %s: unsupported format %q", KeyLogFormat, c.Log.Format)
	}

	if len(c.Tree) > 0 && !hasRoot(c.Tree) {
		return errors.New("config tree: root directory \"/\" is not declared")
	}
	return nil
}

// Store builds the directory store the configuration declares.
func (c *Config) Store() (*fsutil.Store, error) {
	if len(c.Tree) == 0 {
		return fsutil.NewDefaultStore(), nil
	}
	store, err := fsutil.NewStore(c.Tree...)
	if err != nil {
		return nil, fmt.Errorf("config tree: %w", err)
	}
	return store, nil
}

func hasRoot(dirs []fsutil.Directory) bool {
	for _, d := range dirs {
		if p, err := fsutil.Normalize(d.Path); err == nil && p == fsutil.Root {
			return true
		}
	}
	return false
}
