package basedir

import (
	"os"
	"path/filepath"
)

// XDG resolves base directories per the freedesktop XDG Base Directory
// layout: dedicated environment overrides with fixed home-relative
// fallbacks.
type XDG struct {
	home string
}

var _ Strategy = (*XDG)(nil)

// NewXDG returns an XDG strategy rooted at the current user's home
// directory.
func NewXDG() (*XDG, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}

	return &XDG{home: home}, nil
}

// HomeDir returns the home directory the strategy was rooted at.
func (x *XDG) HomeDir() string {
	return x.home
}

// ConfigDir returns $XDG_CONFIG_HOME or ~/.config.
func (x *XDG) ConfigDir() string {
	return x.resolve("XDG_CONFIG_HOME", ".config")
}

// DataDir returns $XDG_DATA_HOME or ~/.local/share.
func (x *XDG) DataDir() string {
	return x.resolve("XDG_DATA_HOME", ".local", "share")
}

// CacheDir returns $XDG_CACHE_HOME or ~/.cache.
func (x *XDG) CacheDir() string {
	return x.resolve("XDG_CACHE_HOME", ".cache")
}

// StateDir returns $XDG_STATE_HOME or ~/.local/state.
func (x *XDG) StateDir() (string, bool) {
	return x.resolve("XDG_STATE_HOME", ".local", "state"), true
}

// RuntimeDir reports no runtime directory. $XDG_RUNTIME_DIR is
// session-scoped and owned by the init system, so it is not consulted.
func (x *XDG) RuntimeDir() (string, bool) {
	return "", false
}

// resolve returns the value of the override variable when it is set to
// an absolute path, falling back to the given home-relative segments.
// Non-absolute values are ignored, per the freedesktop rules.
func (x *XDG) resolve(key string, fallback ...string) string {
	if v := os.Getenv(key); v != "" && filepath.IsAbs(v) {
		return v
	}

	return filepath.Join(append([]string{x.home}, fallback...)...)
}
