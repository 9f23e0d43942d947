package api

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const generateResponseSchemaURL = "schema://generate-plan-response.json"

// generateResponseSchema is the minimum a successful generation body must
// contain. Everything else in the summary is optional.
const generateResponseSchema = `{
	"type": "object",
	"required": ["plan_id", "summary"],
	"properties": {
		"plan_id": {"type": "string", "minLength": 1},
		"summary": {"type": "object"}
	}
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledGenerateSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(strings.NewReader(generateResponseSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(generateResponseSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(generateResponseSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateGenerateResponse checks a 2xx generation body against the schema.
func validateGenerateResponse(raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledGenerateSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
