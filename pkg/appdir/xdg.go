package appdir

import (
	"path/filepath"

	"github.com/smykla-skalski/appdirs/pkg/basedir"
)

// XDG places application directories under the freedesktop XDG base
// directories, one subdirectory per application named after its unixy
// name.
type XDG struct {
	base *basedir.XDG
	name string
}

var _ Strategy = (*XDG)(nil)

// NewXDG returns the XDG strategy for app.
func NewXDG(app App) (*XDG, error) {
	base, err := basedir.NewXDG()
	if err != nil {
		return nil, err
	}

	return &XDG{base: base, name: app.UnixyName()}, nil
}

// ConfigDir returns ~/.config/<unixy name>, honoring the base
// override.
func (x *XDG) ConfigDir() string {
	return filepath.Join(x.base.ConfigDir(), x.name)
}

// DataDir returns ~/.local/share/<unixy name>, honoring the base
// override.
func (x *XDG) DataDir() string {
	return filepath.Join(x.base.DataDir(), x.name)
}

// CacheDir returns ~/.cache/<unixy name>, honoring the base override.
func (x *XDG) CacheDir() string {
	return filepath.Join(x.base.CacheDir(), x.name)
}

// StateDir returns ~/.local/state/<unixy name>, honoring the base
// override.
func (x *XDG) StateDir() (string, bool) {
	state, ok := x.base.StateDir()
	if !ok {
		return "", false
	}

	return filepath.Join(state, x.name), true
}

// RuntimeDir mirrors the base convention, which defines no runtime
// directory.
func (x *XDG) RuntimeDir() (string, bool) {
	return x.base.RuntimeDir()
}

// InConfigDir returns rel joined under ConfigDir.
func (x *XDG) InConfigDir(rel string) string {
	return filepath.Join(x.ConfigDir(), rel)
}

// InDataDir returns rel joined under DataDir.
func (x *XDG) InDataDir(rel string) string {
	return filepath.Join(x.DataDir(), rel)
}

// InCacheDir returns rel joined under CacheDir.
func (x *XDG) InCacheDir(rel string) string {
	return filepath.Join(x.CacheDir(), rel)
}
