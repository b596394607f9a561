// Package config loads the workspace's config.yaml (when present) through
// viper, with environment variables taking precedence per §6: BEADS_DB,
// BD_ACTOR, BD_JSON override the file, which overrides the built-in
// defaults. CLI flags are layered on top of this by the command surface,
// which checks pflag.Changed before falling back to a Get* call here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/beadkeep/beads/internal/debug"
)

var v *viper.Viper

// Initialize locates config.yaml by walking up from the working
// directory looking for .beads/config.yaml, then wires viper's BD_-
// prefixed environment binding and the library's documented defaults.
// Safe to call once at process startup; a second call replaces state.
func Initialize() error {
	v = viper.New()
	v.SetConfigType("yaml")

	if cwd, err := os.Getwd(); err == nil {
		for dir := cwd; ; {
			configPath := filepath.Join(dir, ".beads", "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	v.SetEnvPrefix("BD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("issue-prefix", "")
	v.SetDefault("no-db", false)
	v.SetDefault("no-auto-flush", false)
	v.SetDefault("no-auto-import", false)
	v.SetDefault("json", false)
	v.SetDefault("actor", "")
	v.SetDefault("db", "")
	v.SetDefault("sync-branch", "")
	v.SetDefault("flush-debounce", "0s")
	v.SetDefault("log-file", "")
	v.SetDefault("due-natural-language", true)

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		debug.Logf("Debug: loaded config from %s\n", v.ConfigFileUsed())
	} else {
		debug.Logf("Debug: no config.yaml found; using defaults and environment variables\n")
	}

	// BEADS_DB predates the BD_ env prefix convention and stays supported
	// for existing workspaces; it only applies if BD_DB wasn't already set.
	if os.Getenv("BD_DB") == "" {
		if legacy := os.Getenv("BEADS_DB"); legacy != "" {
			v.Set("db", legacy)
		}
	}

	return nil
}

func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set overrides a configuration value for the remainder of the process,
// used by commands that resolve a flag/env/config precedence chain and
// want later readers to see the resolved value.
func Set(key string, value any) {
	if v != nil {
		v.Set(key, value)
	}
}

// AllSettings returns every configuration key currently in effect.
func AllSettings() map[string]any {
	if v == nil {
		return map[string]any{}
	}
	return v.AllSettings()
}
