package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/smykla-skalski/appdirs/internal/color"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

// Render renders directory sets in the given format.
// Table rendering is the fallback for unset formats.
func Render(format config.Format, dirs []Dirs, theme color.Theme) (string, error) {
	switch format {
	case config.FormatPlain:
		return RenderPlain(dirs), nil

	case config.FormatJSON:
		return RenderJSON(dirs)

	case config.FormatYAML:
		return RenderYAML(dirs)

	case config.FormatTable, config.FormatUnknown:
		return RenderTable(dirs, theme), nil

	default:
		return RenderTable(dirs, theme), nil
	}
}

// RenderPlain renders directory sets as stable key-value lines for scripts.
// Absent concepts produce no line. With more than one set, keys are
// prefixed with the kind name.
func RenderPlain(dirs []Dirs) string {
	var b strings.Builder

	for _, d := range dirs {
		prefix := ""
		if len(dirs) > 1 {
			prefix = d.Kind + "."
		}

		for _, e := range d.entries() {
			if !e.present {
				continue
			}

			fmt.Fprintf(&b, "%s%s\t%s\n", prefix, e.purpose, e.path)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderJSON renders directory sets as indented JSON.
// A single set renders as an object, multiple sets as an array.
func RenderJSON(dirs []Dirs) (string, error) {
	var payload any = dirs

	if len(dirs) == 1 {
		payload = dirs[0]
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode dirs as JSON")
	}

	return string(out), nil
}

// RenderYAML renders directory sets as a YAML document.
// A single set renders as a mapping, multiple sets as a sequence.
func RenderYAML(dirs []Dirs) (string, error) {
	var payload any = dirs

	if len(dirs) == 1 {
		payload = dirs[0]
	}

	out, err := yaml.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode dirs as YAML")
	}

	return strings.TrimRight(string(out), "\n"), nil
}
