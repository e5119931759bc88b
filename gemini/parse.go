package gemini

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseReply extracts the numeric reading from a model reply. The model is
// asked for {"value": "<number>"} but often wraps it in a ```json fence, so
// one opening and one closing fence are stripped before strict JSON parsing.
// The value field may come back as a number or a numeric string.
func ParseReply(raw string) (float64, error) {
	cleaned := strings.Replace(raw, "```json", "", 1)
	cleaned = strings.Replace(cleaned, "```", "", 1)
	cleaned = strings.TrimSpace(cleaned)

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return 0, fmt.Errorf("reply is not valid JSON: %w", err)
	}

	v, ok := obj["value"]
	if !ok {
		return 0, fmt.Errorf("reply has no value field")
	}

	switch value := v.(type) {
	case float64:
		return value, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", value)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("value has unexpected type %T", v)
	}
}
