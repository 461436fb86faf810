package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSONAgainstSchema checks doc against a schema expressed as a generic
// map (the same shape BuildItemsJSONSchema returns).
func ValidateJSONAgainstSchema(schema map[string]any, doc []byte) error {
	raw, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("payload.json", strings.NewReader(string(raw))); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("payload.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
