// Package generation validates responses from the text-generation backend.
// Raw responses are decoded here and only validated values leave the package.
package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// StripCodeFence removes a surrounding markdown code fence, if any.
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```JSON")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// DecodeObject parses raw text as a single JSON object.
func DecodeObject(raw string) (map[string]any, error) {
	text := StripCodeFence(raw)
	if text == "" {
		return nil, domainerror.NewInvalidResponseError("empty response")
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, domainerror.NewInvalidResponseError("response is not a JSON object: %v", err)
	}
	if obj == nil {
		return nil, domainerror.NewInvalidResponseError("response is null")
	}
	return obj, nil
}

// DecodeStrict decodes src into the struct pointed to by dst using json tags.
// Every field of dst must be present in src and carry the exact type; no coercion is done.
// Keys of src that dst does not declare are rejected.
func DecodeStrict(src any, dst any) error {
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Metadata:    &md,
		Result:      dst,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(src); err != nil {
		return domainerror.NewInvalidResponseError("invalid fields: %v", err)
	}
	if len(md.Unset) > 0 {
		return domainerror.NewInvalidResponseError("missing fields: %s", strings.Join(md.Unset, ", "))
	}
	return nil
}

// StringList validates that v is an array of strings and returns the non-blank entries.
func StringList(v any, field string) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, domainerror.NewInvalidResponseError("%s must be an array", field)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, domainerror.NewInvalidResponseError("%s[%d] must be a string", field, i)
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
