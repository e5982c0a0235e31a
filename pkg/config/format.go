// Package config provides configuration schema types for the appdirs CLI.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
)

//go:generate enumer -type=Format -trimprefix=Format -transform=lower -json -text -yaml -sql
//go:generate go run github.com/smykla-skalski/appdirs/tools/enumerfix format_enumer.go

// ErrInvalidFormat is returned when an invalid output format value is provided.
var ErrInvalidFormat = errors.New("invalid output format")

// Format selects the rendering of resolved directories.
type Format int

const (
	// FormatUnknown is the zero value and names no format.
	FormatUnknown Format = iota

	// FormatTable renders an aligned table with borders.
	FormatTable

	// FormatPlain renders one key-value pair per line.
	FormatPlain

	// FormatJSON renders a JSON object.
	FormatJSON

	// FormatYAML renders a YAML document.
	FormatYAML
)

// ParseFormat parses a string into a Format value. Matching is
// case-insensitive.
func ParseFormat(s string) (Format, error) {
	format, err := FormatString(s)
	if err != nil {
		return FormatUnknown,
			errors.Wrapf(
				ErrInvalidFormat,
				"%q, must be %q, %q, %q, or %q",
				s,
				FormatTable.String(),
				FormatPlain.String(),
				FormatJSON.String(),
				FormatYAML.String(),
			)
	}

	return format, nil
}

// JSONSchema returns the JSON Schema for the Format type.
func (Format) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: "Output format for resolved directories",
		Enum:        []any{"table", "plain", "json", "yaml"},
	}
}
