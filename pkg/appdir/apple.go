package appdir

import (
	"path/filepath"

	"github.com/smykla-skalski/appdirs/pkg/basedir"
)

// Apple places application directories under the macOS Library roots,
// one subdirectory per application named after its bundle identifier.
type Apple struct {
	base     *basedir.Apple
	bundleID string
}

var _ Strategy = (*Apple)(nil)

// NewApple returns the Apple strategy for app.
func NewApple(app App) (*Apple, error) {
	base, err := basedir.NewApple()
	if err != nil {
		return nil, err
	}

	return &Apple{base: base, bundleID: app.BundleID()}, nil
}

// ConfigDir returns ~/Library/Preferences/<bundle id>.
func (a *Apple) ConfigDir() string {
	return filepath.Join(a.base.ConfigDir(), a.bundleID)
}

// DataDir returns ~/Library/Application Support/<bundle id>.
func (a *Apple) DataDir() string {
	return filepath.Join(a.base.DataDir(), a.bundleID)
}

// CacheDir returns ~/Library/Caches/<bundle id>.
func (a *Apple) CacheDir() string {
	return filepath.Join(a.base.CacheDir(), a.bundleID)
}

// StateDir reports no state directory.
func (a *Apple) StateDir() (string, bool) {
	return "", false
}

// RuntimeDir reports no runtime directory.
func (a *Apple) RuntimeDir() (string, bool) {
	return "", false
}

// InConfigDir returns rel joined under ConfigDir.
func (a *Apple) InConfigDir(rel string) string {
	return filepath.Join(a.ConfigDir(), rel)
}

// InDataDir returns rel joined under DataDir.
func (a *Apple) InDataDir(rel string) string {
	return filepath.Join(a.DataDir(), rel)
}

// InCacheDir returns rel joined under CacheDir.
func (a *Apple) InCacheDir(rel string) string {
	return filepath.Join(a.CacheDir(), rel)
}
