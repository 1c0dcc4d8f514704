package config

import (
	"os"
	"path/filepath"
)

// EnvPath names a config file that takes precedence over the default
// locations but not over a compiled-in override.
const EnvPath = "PAINTPAD_CONFIG"

const (
	rcName       = "config.rc"
	legacyRCName = "paintpad.rc"
	devRCName    = ".paintpadrc"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // Set at compile time if needed
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load attempts to load the configuration.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Candidates lists the files the loader tries, most specific first.
func (l *Loader) Candidates() []string {
	var paths []string
	if l.OverridePath != "" {
		paths = append(paths, l.OverridePath)
	}
	if env := os.Getenv(EnvPath); env != "" {
		paths = append(paths, env)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, devRCName))
		}
	}
	if dir := configDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, rcName), filepath.Join(dir, legacyRCName))
	}
	return paths
}

// GetConfigPath returns the first candidate that exists, or an empty string.
func (l *Loader) GetConfigPath() string {
	for _, p := range l.Candidates() {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}

// DefaultPath is where a new config file is written when none was found.
func (l *Loader) DefaultPath() string {
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	if dir := configDir(); dir != "" {
		return filepath.Join(dir, rcName)
	}
	return ""
}

// configDir is $XDG_CONFIG_HOME/paintpad, falling back to ~/.config/paintpad.
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "paintpad")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "paintpad")
}
