package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Configuration constants (defaults)
const (
	DefaultMaxEntries  = 5      // Backup ring size
	DefaultRootDirName = ".xcp" // Clipboard root, relative to the home directory
	CurrentDirName     = "current"
	BackupDirName      = "old"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "XCP_CONFIG_PATH"
)

// ErrInvalidConfig is returned for config values of the wrong type or range
// and for config files that do not parse.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the clipboard configuration.
// CurrentDir and BackupDir are derived from RootDir; change RootDir through
// SetRootDir or Update so they stay in sync.
type Config struct {
	RootDir    string
	CurrentDir string
	BackupDir  string

	MaxEntries          int
	Verbose             bool
	SyncSystemClipboard bool
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	c := &Config{
		MaxEntries: DefaultMaxEntries,
		Verbose:    true,
	}
	c.SetRootDir(filepath.Join(homeDir(), DefaultRootDirName))
	return c
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// SetRootDir changes the clipboard root and recomputes the subdirectories.
func (c *Config) SetRootDir(path string) {
	c.RootDir = path
	c.CurrentDir = filepath.Join(path, CurrentDirName)
	c.BackupDir = filepath.Join(path, BackupDirName)
}

// lookup returns the first of keys present in m.
func lookup(m map[string]any, keys ...string) (any, string, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			return v, key, true
		}
	}
	return nil, "", false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func expandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

// Update applies the keys present in overrides. Both snake_case and camelCase
// keys are accepted; unknown keys are ignored. Every value is validated before
// anything is applied, so a failed update leaves c unchanged.
func (c *Config) Update(overrides map[string]any) error {
	next := *c

	if v, key, ok := lookup(overrides, "verbose"); ok {
		b, isBool := v.(bool)
		if !isBool {
			return fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidConfig, key, v)
		}
		next.Verbose = b
	}

	if v, key, ok := lookup(overrides, "max_entries", "maxEntries"); ok {
		n, isInt := toInt(v)
		if !isInt {
			return fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidConfig, key, v)
		}
		if n < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidConfig, key, n)
		}
		next.MaxEntries = n
	}

	if v, key, ok := lookup(overrides, "root_dir", "rootDir"); ok {
		s, isString := v.(string)
		if !isString || s == "" {
			return fmt.Errorf("%w: %s must be a non-empty path", ErrInvalidConfig, key)
		}
		next.SetRootDir(expandHome(s))
	}

	if v, key, ok := lookup(overrides, "sync_system_clipboard", "syncSystemClipboard"); ok {
		b, isBool := v.(bool)
		if !isBool {
			return fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidConfig, key, v)
		}
		next.SyncSystemClipboard = b
	}

	*c = next
	return nil
}

// AsMap returns the serializable settings. The subdirectories are derived
// and not part of it.
func (c *Config) AsMap() map[string]any {
	return map[string]any{
		"verbose":               c.Verbose,
		"max_entries":           c.MaxEntries,
		"root_dir":              c.RootDir,
		"sync_system_clipboard": c.SyncSystemClipboard,
	}
}

// FilePath returns the config file location: $XCP_CONFIG_PATH when set,
// otherwise ~/.config/xcp/config.yaml.
func FilePath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return expandHome(path)
	}
	return filepath.Join(homeDir(), ".config", "xcp", "config.yaml")
}

// Load reads the config file at FilePath into c, creating it with the
// current settings when it does not exist yet. It returns the path used.
func (c *Config) Load() (string, error) {
	path := FilePath()
	return path, c.LoadFrom(path)
}

// LoadFrom is Load for an explicit path.
func (c *Config) LoadFrom(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c.Save(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
	}
	if err := c.Update(raw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

const fileHeader = `# xcp configuration file
#
# verbose:               print a confirmation after copy/cut (default: true)
# max_entries:           number of retired clipboard items kept in the backup ring (default: 5)
# root_dir:              clipboard storage; holds current/ and old/ (default: ~/.xcp)
# sync_system_clipboard: also put the clipped item's path on the OS clipboard (default: false)

`

// Save writes the settings to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c.AsMap())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
