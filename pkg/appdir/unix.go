package appdir

import (
	"path/filepath"

	"github.com/smykla-skalski/appdirs/pkg/basedir"
)

// Unix clusters every application file under a single dotfile root in
// the home directory, the layout that predates the XDG convention. It
// wraps no base strategy.
type Unix struct {
	home string
	name string
}

var _ Strategy = (*Unix)(nil)

// NewUnix returns the Unix dotfile strategy for app.
func NewUnix(app App) (*Unix, error) {
	home, err := basedir.HomeDir()
	if err != nil {
		return nil, err
	}

	return &Unix{home: home, name: app.UnixyName()}, nil
}

func (u *Unix) root() string {
	return filepath.Join(u.home, "."+u.name)
}

// ConfigDir returns the dotfile root itself, ~/.<unixy name>.
func (u *Unix) ConfigDir() string {
	return u.root()
}

// DataDir returns ~/.<unixy name>/data.
func (u *Unix) DataDir() string {
	return filepath.Join(u.root(), "data")
}

// CacheDir returns ~/.<unixy name>/cache.
func (u *Unix) CacheDir() string {
	return filepath.Join(u.root(), "cache")
}

// StateDir returns ~/.<unixy name>/state.
func (u *Unix) StateDir() (string, bool) {
	return filepath.Join(u.root(), "state"), true
}

// RuntimeDir reports no runtime directory.
func (u *Unix) RuntimeDir() (string, bool) {
	return "", false
}

// InConfigDir returns rel joined under ConfigDir.
func (u *Unix) InConfigDir(rel string) string {
	return filepath.Join(u.ConfigDir(), rel)
}

// InDataDir returns rel joined under DataDir.
func (u *Unix) InDataDir(rel string) string {
	return filepath.Join(u.DataDir(), rel)
}

// InCacheDir returns rel joined under CacheDir.
func (u *Unix) InCacheDir(rel string) string {
	return filepath.Join(u.CacheDir(), rel)
}
