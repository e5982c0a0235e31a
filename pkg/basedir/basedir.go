// Package basedir resolves the per-user base directories defined by the
// platform conventions an application can follow: the freedesktop XDG
// layout, the Apple Library layout, and the Windows AppData layout.
//
// Every strategy is a pure path computation. Nothing is created,
// checked for existence, or touched on disk, and results are never
// cached: environment overrides are read again on each call.
package basedir

import (
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
)

// ErrHomeDirNotFound is returned by strategy constructors when the
// current user's home directory cannot be determined.
var ErrHomeDirNotFound = errors.New("could not locate home directory")

// Strategy is a platform convention for locating the current user's
// base directories. Construction resolves the home directory once;
// after that every accessor is total.
type Strategy interface {
	// HomeDir returns the home directory the strategy was rooted at.
	HomeDir() string

	// ConfigDir returns the root for user configuration files.
	ConfigDir() string

	// DataDir returns the root for user data files.
	DataDir() string

	// CacheDir returns the root for non-essential cached files.
	CacheDir() string

	// StateDir returns the root for persisted application state, or
	// false when the convention defines no such directory.
	StateDir() (string, bool)

	// RuntimeDir returns the root for sockets and other per-session
	// files, or false when the convention defines no such directory.
	RuntimeDir() (string, bool)
}

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.CombineErrors(ErrHomeDirNotFound, err)
	}

	return home, nil
}

// Default returns the conventional strategy for the current operating
// system: the AppData layout on Windows, XDG everywhere else.
//
//nolint:ireturn // callers pick behavior through Strategy
func Default() (Strategy, error) {
	if runtime.GOOS == "windows" {
		return NewWindows()
	}

	return NewXDG()
}
