package appdir

import "strings"

// App identifies an application to derive directory names from. Fields
// are concatenated verbatim, so callers supply path-safe values.
type App struct {
	// TopLevelDomain is the reverse-domain prefix, such as "com" or
	// "org".
	TopLevelDomain string

	// Author is the application vendor. It is lowercased when the
	// bundle identifier is derived.
	Author string

	// Name is the display-cased application name, such as "Firefox
	// Developer Edition".
	Name string
}

// BundleID returns the reverse-domain bundle identifier, such as
// "com.apple.Safari". The author is lowercased; the name keeps its
// casing.
func (a App) BundleID() string {
	return a.TopLevelDomain + "." + strings.ToLower(a.Author) + "." + a.Name
}

// UnixyName returns the lowercased application name with spaces
// replaced by hyphens, such as "firefox-developer-edition". Other
// punctuation is left untouched.
func (a App) UnixyName() string {
	return strings.ReplaceAll(strings.ToLower(a.Name), " ", "-")
}
