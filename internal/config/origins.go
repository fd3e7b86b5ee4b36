package config

import (
	"encoding/json"
	"fmt"
)

// parseOrigins decodes a JSON array of strings, preserving element order.
// Anything else, including null, is rejected.
func parseOrigins(raw string) ([]string, error) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, &MalformedError{Field: EnvCORSOrigins, Reason: "not valid JSON", Err: err}
	}

	items, ok := decoded.([]any)
	if !ok {
		return nil, &MalformedError{
			Field:  EnvCORSOrigins,
			Reason: fmt.Sprintf("expected a JSON array of strings, got %s", jsonKind(decoded)),
		}
	}

	origins := make([]string, 0, len(items))
	for i, item := range items {
		origin, ok := item.(string)
		if !ok {
			return nil, &MalformedError{
				Field:  EnvCORSOrigins,
				Reason: fmt.Sprintf("element %d is %s, not a string", i, jsonKind(item)),
			}
		}
		origins = append(origins, origin)
	}
	return origins, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
