package appdir

import (
	"path/filepath"

	"github.com/smykla-skalski/appdirs/pkg/basedir"
)

// Windows places application directories under the AppData roots, in
// an <Author>/<Name> folder with a purpose leaf telling config, data,
// and cache apart within the shared roaming root.
type Windows struct {
	base *basedir.Windows
	app  string
}

var _ Strategy = (*Windows)(nil)

// NewWindows returns the Windows strategy for app.
func NewWindows(app App) (*Windows, error) {
	base, err := basedir.NewWindows()
	if err != nil {
		return nil, err
	}

	return &Windows{base: base, app: filepath.Join(app.Author, app.Name)}, nil
}

// ConfigDir returns ~/AppData/Roaming/<Author>/<Name>/config.
func (w *Windows) ConfigDir() string {
	return filepath.Join(w.base.ConfigDir(), w.app, "config")
}

// DataDir returns ~/AppData/Roaming/<Author>/<Name>/data.
func (w *Windows) DataDir() string {
	return filepath.Join(w.base.DataDir(), w.app, "data")
}

// CacheDir returns ~/AppData/Local/<Author>/<Name>/cache.
func (w *Windows) CacheDir() string {
	return filepath.Join(w.base.CacheDir(), w.app, "cache")
}

// StateDir reports no state directory.
func (w *Windows) StateDir() (string, bool) {
	return "", false
}

// RuntimeDir reports no runtime directory.
func (w *Windows) RuntimeDir() (string, bool) {
	return "", false
}

// InConfigDir returns rel joined under ConfigDir.
func (w *Windows) InConfigDir(rel string) string {
	return filepath.Join(w.ConfigDir(), rel)
}

// InDataDir returns rel joined under DataDir.
func (w *Windows) InDataDir(rel string) string {
	return filepath.Join(w.DataDir(), rel)
}

// InCacheDir returns rel joined under CacheDir.
func (w *Windows) InCacheDir(rel string) string {
	return filepath.Join(w.CacheDir(), rel)
}
