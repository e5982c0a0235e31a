// Package schema generates JSON Schema from the appdirs config types.
package schema

import (
	"encoding/json"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

const (
	schemaURI = "https://json-schema.org/draft/2020-12/schema"
	title     = "appdirs configuration"
)

// Generate produces a JSON Schema from the config.Config struct.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		Mapper:         mapCustomTypes,
	}

	s := r.Reflect(&config.Config{})
	s.Version = schemaURI
	s.Title = title

	return s
}

// mapCustomTypes maps enum types defined outside the config package to
// string schemas. Types in pkg/config carry their own JSONSchema methods.
func mapCustomTypes(t reflect.Type) *jsonschema.Schema {
	if t == reflect.TypeFor[appdir.Kind]() {
		return &jsonschema.Schema{
			Type:        "string",
			Description: "Directory layout convention",
			Enum:        []any{"xdg", "apple", "windows", "unix"},
		}
	}

	return nil
}

// GenerateJSON produces a JSON Schema as bytes.
// When indent is true, the output is pretty-printed.
func GenerateJSON(indent bool) ([]byte, error) {
	s := Generate()

	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	// Append trailing newline for file output.
	return append(data, '\n'), nil
}
