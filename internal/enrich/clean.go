package enrich

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

// CleanResponse extracts the JSON object from a raw model response. Models
// sometimes wrap their output in markdown code fences; a fenced response
// must parse identically to the bare JSON.
func CleanResponse(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// Fall back to the first balanced-looking object in the text.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("%w: no JSON object found in response", model.ErrBadAIResponse)
	}
	s = s[start : end+1]

	if !json.Valid([]byte(s)) {
		return "", fmt.Errorf("%w: extracted text is not valid JSON", model.ErrBadAIResponse)
	}
	return s, nil
}

// ParseFields unmarshals a cleaned response into the field→value map the
// orchestrator persists.
func ParseFields(raw string) (map[string]interface{}, error) {
	cleaned, err := CleanResponse(raw)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrBadAIResponse, err)
	}
	return fields, nil
}
