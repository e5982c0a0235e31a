// Package appdir derives the directories one application should use
// for its configuration, data, cache, state, and runtime files, on top
// of the base directory conventions in pkg/basedir.
//
// A Strategy is built once from an App identity and then queried on
// demand. Like the base layer, everything is a pure path computation:
// no directory is created or checked, and environment overrides are
// read again on each call.
package appdir

import "runtime"

//go:generate mockgen -source=appdir.go -destination=appdir_mock.go -package=appdir

// Strategy resolves the directories one application should use for its
// files under a single platform convention.
type Strategy interface {
	// ConfigDir returns the application's configuration directory.
	ConfigDir() string

	// DataDir returns the application's data directory.
	DataDir() string

	// CacheDir returns the application's cache directory.
	CacheDir() string

	// StateDir returns the application's state directory, or false
	// when the convention defines none.
	StateDir() (string, bool)

	// RuntimeDir returns the application's runtime directory, or false
	// when the convention defines none.
	RuntimeDir() (string, bool)

	// InConfigDir returns rel joined under ConfigDir.
	InConfigDir(rel string) string

	// InDataDir returns rel joined under DataDir.
	InDataDir(rel string) string

	// InCacheDir returns rel joined under CacheDir.
	InCacheDir(rel string) string
}

// Default returns the conventional strategy for app on the current
// operating system: the AppData layout on Windows, XDG everywhere
// else.
//
//nolint:ireturn // callers pick behavior through Strategy
func Default(app App) (Strategy, error) {
	if runtime.GOOS == "windows" {
		return NewWindows(app)
	}

	return NewXDG(app)
}

// Native returns the strategy users of the current operating system
// expect: the Library layout on macOS, Default everywhere else. It
// suits applications whose users do not hand-edit configuration files.
//
//nolint:ireturn // callers pick behavior through Strategy
func Native(app App) (Strategy, error) {
	if runtime.GOOS == "darwin" {
		return NewApple(app)
	}

	return Default(app)
}

// New returns the strategy of the given kind for app. KindUnknown
// resolves through Default.
//
//nolint:ireturn // callers pick behavior through Strategy
func New(kind Kind, app App) (Strategy, error) {
	switch kind {
	case KindXDG:
		return NewXDG(app)
	case KindApple:
		return NewApple(app)
	case KindWindows:
		return NewWindows(app)
	case KindUnix:
		return NewUnix(app)
	case KindUnknown:
		return Default(app)
	}

	return Default(app)
}
