package llmtext

import (
	"encoding/json"
	"strings"
)

// priorityKeys are the object fields most likely to carry the real payload
// when a reply is a whole JSON object. Checked in order; first non-empty
// string wins.
var priorityKeys = []string{
	"content",
	"text",
	"body",
	"article",
	"message",
	"result",
	"summary",
}

// Normalise extracts the best-guess human-readable text from a raw AI reply.
// It is pure and never panics; an empty result means no substantive content
// was found.
func Normalise(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	working := trimmed

	// Leading truncated JSON: a reply that begins with a quote or brace and
	// contains a key marker is scanned for "key": "value" pairs. The longest
	// value is kept on the assumption that short fields are metadata.
	if (strings.HasPrefix(trimmed, `"`) || strings.HasPrefix(trimmed, "{")) &&
		strings.Contains(trimmed, `":`) {
		if extracted, ok := extractPairValues(trimmed); ok {
			working = longestValue(extracted)
		} else {
			working = stripLeadingJSONNoise(trimmed)
		}
	}

	// Whole-input JSON object: checked against the original input, not the
	// scan result, so a parseable object always takes this path.
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		var obj map[string]any
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
			if objectIsEmpty(obj) {
				// Structurally valid but substantively empty: the upstream
				// service produced nothing worth showing.
				return ""
			}
			for _, key := range priorityKeys {
				if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
					// The field may itself wrap further JSON noise.
					return Normalise(s)
				}
			}
		}
	}

	return strings.TrimSpace(applyCleanupRules(working))
}

// longestValue returns the longest string in values, ties broken by first
// found. A long author bio can outrank a short title; the tie-break is kept
// as-is for output stability.
func longestValue(values []string) string {
	best := ""
	for _, v := range values {
		if len(v) > len(best) {
			best = v
		}
	}
	return best
}

// objectIsEmpty reports whether every value in obj is empty: nil, a blank
// string, an empty array, or an object whose own values are all empty
// (checked one level deep).
func objectIsEmpty(obj map[string]any) bool {
	for _, v := range obj {
		if !valueIsEmpty(v, 1) {
			return false
		}
	}
	return true
}

func valueIsEmpty(v any, depth int) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		if len(val) == 0 {
			return true
		}
		if depth <= 0 {
			return false
		}
		for _, nested := range val {
			if !valueIsEmpty(nested, depth-1) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
