package basedir

import "path/filepath"

// Apple resolves base directories per the macOS standard layout under
// ~/Library. The layout takes no environment overrides and defines no
// state or runtime directories.
type Apple struct {
	home string
}

var _ Strategy = (*Apple)(nil)

// NewApple returns an Apple strategy rooted at the current user's home
// directory.
func NewApple() (*Apple, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}

	return &Apple{home: home}, nil
}

// HomeDir returns the home directory the strategy was rooted at.
func (a *Apple) HomeDir() string {
	return a.home
}

// ConfigDir returns ~/Library/Preferences.
func (a *Apple) ConfigDir() string {
	return filepath.Join(a.home, "Library", "Preferences")
}

// DataDir returns ~/Library/Application Support.
func (a *Apple) DataDir() string {
	return filepath.Join(a.home, "Library", "Application Support")
}

// CacheDir returns ~/Library/Caches.
func (a *Apple) CacheDir() string {
	return filepath.Join(a.home, "Library", "Caches")
}

// StateDir reports no state directory.
func (a *Apple) StateDir() (string, bool) {
	return "", false
}

// RuntimeDir reports no runtime directory.
func (a *Apple) RuntimeDir() (string, bool) {
	return "", false
}
