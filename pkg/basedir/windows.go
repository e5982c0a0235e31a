package basedir

import "path/filepath"

// Windows resolves base directories per the Windows AppData layout,
// using the fixed home-relative folders rather than the host known
// folder API so the strategy stays constructible on every platform.
// The layout defines no state or runtime directories.
type Windows struct {
	home string
}

var _ Strategy = (*Windows)(nil)

// NewWindows returns a Windows strategy rooted at the current user's
// home directory.
func NewWindows() (*Windows, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}

	return &Windows{home: home}, nil
}

// HomeDir returns the home directory the strategy was rooted at.
func (w *Windows) HomeDir() string {
	return w.home
}

// ConfigDir returns ~/AppData/Roaming.
func (w *Windows) ConfigDir() string {
	return w.roaming()
}

// DataDir returns ~/AppData/Roaming, the same root ConfigDir uses.
func (w *Windows) DataDir() string {
	return w.roaming()
}

// CacheDir returns ~/AppData/Local.
func (w *Windows) CacheDir() string {
	return filepath.Join(w.home, "AppData", "Local")
}

// StateDir reports no state directory.
func (w *Windows) StateDir() (string, bool) {
	return "", false
}

// RuntimeDir reports no runtime directory.
func (w *Windows) RuntimeDir() (string, bool) {
	return "", false
}

func (w *Windows) roaming() string {
	return filepath.Join(w.home, "AppData", "Roaming")
}
