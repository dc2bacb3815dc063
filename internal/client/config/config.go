// Package config loads the client settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DirName каталог настроек и данных в домашней директории
	DirName = ".oneclickcopy"
	// FileName имя файла настроек
	FileName = "config.toml"

	BackendGoogleDrive = "gdrive"
	BackendServer      = "server"
)

// Duration is a time.Duration written as "60s", "500ms" in TOML
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// Config is the client configuration
type Config struct {
	Google    GoogleConfig `toml:"google"`
	Log       LogConfig    `toml:"log"`
	DBPath    string       `toml:"db_path"`
	Backend   string       `toml:"backend"`
	ServerURL string       `toml:"server_url"`
	Sync      SyncConfig   `toml:"sync"`
	Editor    EditorConfig `toml:"editor"`
}

// GoogleConfig holds the OAuth client of the installed application
type GoogleConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

type SyncConfig struct {
	Cooldown Duration `toml:"cooldown"`
}

type EditorConfig struct {
	Debounce Duration `toml:"debounce"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"` // пусто = stderr
}

// DefaultDir returns ~/.oneclickcopy
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Default returns the configuration used when no file exists.
// Paths are placed under dir.
func Default(dir string) *Config {
	return &Config{
		DBPath:    filepath.Join(dir, "oneclickcopy.db"),
		Backend:   BackendGoogleDrive,
		ServerURL: "http://localhost:8080",
		Sync:      SyncConfig{Cooldown: Duration(60 * time.Second)},
		Editor:    EditorConfig{Debounce: Duration(500 * time.Millisecond)},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   filepath.Join(dir, "oneclickcopy.log"),
		},
	}
}

// Load reads the file at path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration, creating the directory if needed
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// Файл может содержать client_secret
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path cannot be empty")
	}
	if !slices.Contains([]string{BackendGoogleDrive, BackendServer}, c.Backend) {
		return fmt.Errorf("backend must be %q or %q, got %q", BackendGoogleDrive, BackendServer, c.Backend)
	}
	if c.Backend == BackendServer && c.ServerURL == "" {
		return fmt.Errorf("server_url is required for the server backend")
	}
	if c.Sync.Cooldown < 0 {
		return fmt.Errorf("sync.cooldown cannot be negative")
	}
	if c.Editor.Debounce < 0 {
		return fmt.Errorf("editor.debounce cannot be negative")
	}
	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
