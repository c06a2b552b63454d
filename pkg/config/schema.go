package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	jsonschemago "github.com/google/jsonschema-go/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/config_schema.json
var configSchema string

const configSchemaURL = "https://pearify.dev/schemas/chalk-config.json"

var (
	configSchemaOnce     sync.Once
	compiledConfigSchema *jsonschema.Schema
	configSchemaError    error
)

// getCompiledConfigSchema compiles the embedded schema once and caches it
func getCompiledConfigSchema() (*jsonschema.Schema, error) {
	configSchemaOnce.Do(func() {
		compiledConfigSchema, configSchemaError = compileSchema(configSchema, configSchemaURL)
	})
	return compiledConfigSchema, configSchemaError
}

func compileSchema(schemaJSON, schemaURL string) (*jsonschema.Schema, error) {
	configLog.Printf("Compiling JSON schema: %s", schemaURL)

	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(schemaJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return schema, nil
}

// validate checks a decoded YAML document against the config schema.
func validate(doc any) error {
	schema, err := getCompiledConfigSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so YAML scalars become the types the
	// validator expects.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to convert config for validation: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to convert config for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GeneratedSchema derives a JSON schema from the File type. It documents
// the shape of the config for editors; validation uses the embedded schema.
func GeneratedSchema() ([]byte, error) {
	s, err := jsonschemago.For[File](nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate config schema: %w", err)
	}
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config schema: %w", err)
	}
	return out, nil
}

// EmbeddedSchema returns the schema used for validation.
func EmbeddedSchema() string {
	return configSchema
}
