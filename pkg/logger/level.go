package logger

import "log/slog"

//go:generate enumer -type=Level -trimprefix=Level -transform=upper -json -text -yaml -sql
//go:generate go run github.com/smykla-skalski/appdirs/tools/enumerfix level_enumer.go

// Level represents the log level.
type Level int

const (
	// LevelDebug enables all output, including per-call tracing.
	LevelDebug Level = iota

	// LevelInfo enables informational output and errors.
	LevelInfo

	// LevelError enables error output only.
	LevelError
)

// ToSlogLevel converts the level to its slog equivalent.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

// LevelFromFlags derives the log level from the debug and trace flags:
// trace enables everything, debug enables info and above, and with
// neither set only errors are logged.
func LevelFromFlags(debug, trace bool) Level {
	switch {
	case trace:
		return LevelDebug
	case debug:
		return LevelInfo
	default:
		return LevelError
	}
}
