package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// NormalizeAndSanitizeJSON makes a lenient pass over a provider payload that
// failed strict validation:
//   - coerces string numerics for quantity/confidence
//   - drops null or empty optionals (expiration null is kept — it is meaningful)
//   - defaults a missing/unknown action to "add"
//   - removes unknown keys (additionalProperties: false friendliness)
//
// Returns the cleaned payload and the list of adjustments made.
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)

	// top-level: keep only schema keys
	for k := range maps.Clone(m) {
		switch k {
		case "items", "overall_confidence", "needs_review":
		default:
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}
	if v, ok := m["overall_confidence"]; ok {
		if f, ok := coerceNumber(v); ok {
			m["overall_confidence"] = clamp01(f)
		} else {
			m["overall_confidence"] = 0.0
			dropped = append(dropped, "overall_confidence(type)")
		}
	}

	items, _ := m["items"].([]any)
	cleaned := make([]any, 0, len(items))
	for i, it := range items {
		im, ok := it.(map[string]any)
		if !ok {
			dropped = append(dropped, fmt.Sprintf("items[%d](type)", i))
			continue
		}
		sanitizeItem(i, im, &dropped)
		if name, _ := im["name"].(string); strings.TrimSpace(name) == "" {
			dropped = append(dropped, fmt.Sprintf("items[%d](no name)", i))
			continue
		}
		cleaned = append(cleaned, im)
	}
	m["items"] = cleaned

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, dropped, nil
}

func sanitizeItem(i int, im map[string]any, dropped *[]string) {
	tag := func(field, why string) {
		*dropped = append(*dropped, fmt.Sprintf("items[%d].%s(%s)", i, field, why))
	}

	allowed := map[string]struct{}{
		"name": {}, "quantity": {}, "unit": {}, "action": {}, "category": {},
		"location": {}, "brand": {}, "notes": {}, "confidence": {}, "expiration": {},
	}
	for k := range maps.Clone(im) {
		if _, ok := allowed[k]; !ok {
			delete(im, k)
			tag(k, "unknown")
		}
	}

	if v, ok := im["quantity"]; ok {
		if f, ok := coerceNumber(v); ok {
			if f < 0 {
				f = 0
				tag("quantity", "negative")
			}
			im["quantity"] = f
		} else {
			im["quantity"] = 1.0
			tag("quantity", "type")
		}
	} else {
		im["quantity"] = 1.0
		tag("quantity", "missing")
	}

	if v, ok := im["confidence"]; ok {
		if f, ok := coerceNumber(v); ok {
			im["confidence"] = clamp01(f)
		} else {
			im["confidence"] = 0.5
			tag("confidence", "type")
		}
	} else {
		im["confidence"] = 0.5
		tag("confidence", "missing")
	}

	action, _ := im["action"].(string)
	action = strings.ToLower(strings.TrimSpace(action))
	switch action {
	case ActionAdd, ActionSubtract, ActionSet:
		im["action"] = action
	default:
		im["action"] = ActionAdd
		tag("action", "defaulted")
	}

	// expiration: null is meaningful ("known absent"), keep it
	for _, k := range []string{"unit", "category", "location", "brand", "notes"} {
		switch v := im[k].(type) {
		case nil:
			if _, present := im[k]; present {
				delete(im, k)
				tag(k, "null")
			}
		case string:
			if strings.TrimSpace(v) == "" {
				delete(im, k)
				tag(k, "empty")
			} else {
				im[k] = strings.TrimSpace(v)
			}
		default:
			if _, present := im[k]; present {
				delete(im, k)
				tag(k, "type")
			}
		}
	}
	if v, present := im["expiration"]; present {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			delete(im, "expiration")
			tag("expiration", "empty")
		}
	}
	if name, ok := im["name"].(string); ok {
		im["name"] = strings.TrimSpace(name)
	}
}

func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
