package appdir

import "github.com/cockroachdb/errors"

//go:generate enumer -type=Kind -trimprefix=Kind -transform=lower -json -text -yaml -sql
//go:generate go run github.com/smykla-skalski/appdirs/tools/enumerfix kind_enumer.go

// Kind names one of the directory layout conventions.
type Kind int

const (
	// KindUnknown is the zero value and names no convention.
	KindUnknown Kind = iota

	// KindXDG is the freedesktop XDG base directory convention.
	KindXDG

	// KindApple is the macOS Library convention.
	KindApple

	// KindWindows is the Windows AppData convention.
	KindWindows

	// KindUnix is the legacy Unix dotfile convention.
	KindUnix
)

// ErrInvalidKind is returned when a string names no known strategy
// kind.
var ErrInvalidKind = errors.New("invalid strategy kind")

// ParseKind converts a string such as "xdg" into a Kind. Matching is
// case-insensitive.
func ParseKind(s string) (Kind, error) {
	kind, err := KindString(s)
	if err != nil {
		return KindUnknown, errors.Wrapf(
			ErrInvalidKind,
			"%q, must be %q, %q, %q, or %q",
			s,
			KindXDG.String(),
			KindApple.String(),
			KindWindows.String(),
			KindUnix.String(),
		)
	}

	return kind, nil
}
