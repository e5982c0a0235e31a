package schema

const (
	// SchemaURL is the published location of the config JSON Schema.
	SchemaURL = "https://raw.githubusercontent.com/smykla-skalski/appdirs/main/schema/appdirs.schema.json"

	// SchemaFilename is the name of the generated schema file.
	SchemaFilename = "appdirs.schema.json"
)

// SchemaDirective returns the Taplo schema directive line prepended to
// generated TOML files.
func SchemaDirective() string {
	return "#:schema " + SchemaURL
}
