package extract

// BuildItemsJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the provider as a structured output constraint and also use it
// locally to validate whatever comes back.
func BuildItemsJSONSchema(allowedCategories []string) map[string]any {
	itemProps := map[string]any{
		"name":     map[string]any{"type": "string", "minLength": 1},
		"quantity": map[string]any{"type": "number", "minimum": 0.0},
		"unit":     map[string]any{"type": "string"},
		"action":   map[string]any{"type": "string", "enum": Actions},
		"category": map[string]any{"type": "string"},
		"location": map[string]any{"type": "string"},
		"brand":    map[string]any{"type": "string"},
		"notes":    map[string]any{"type": "string"},
		"confidence": map[string]any{
			"type": "number", "minimum": 0.0, "maximum": 1.0,
		},
		// Explicit null means "known absent" and is distinct from omitting
		// the field; both must survive validation.
		"expiration": map[string]any{
			"type": []string{"string", "null"},
		},
	}
	if len(allowedCategories) > 0 {
		itemProps["category"] = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           itemProps,
		"required":             []string{"name", "quantity", "action", "confidence"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"items": map[string]any{
				"type":  "array",
				"items": item,
			},
			"overall_confidence": map[string]any{
				"type": "number", "minimum": 0.0, "maximum": 1.0,
			},
			"needs_review": map[string]any{"type": "boolean"},
		},
		"required": []string{"items", "overall_confidence", "needs_review"},
	}
}
