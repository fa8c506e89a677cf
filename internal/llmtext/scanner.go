package llmtext

import (
	"regexp"
	"strings"
)

// scanState tracks progress through one "key": "value" pair.
type scanState int

const (
	seekKey scanState = iota
	inKey
	seekColon
	seekValue
	inQuotedValue
)

var trailingArtifact = regexp.MustCompile(`[\s,}"]+$`)

// extractPairValues scans s for quoted "key": "value" pairs, tolerating
// truncated input. Backslash-escaped quotes do not terminate a key or value.
// When a value's closing quote is missing the remainder of the string is
// taken as the value, minus any trailing comma/brace artifact. Unquoted
// values (numbers, null, booleans) are skipped rather than collected.
//
// Returns the collected values and whether at least one was found.
func extractPairValues(s string) ([]string, bool) {
	var (
		values  []string
		state   = seekKey
		start   int
		escaped bool
	)

	flush := func(value string, truncated bool) {
		value = unescapeQuotes(value)
		if truncated {
			value = trailingArtifact.ReplaceAllString(value, "")
		}
		if strings.TrimSpace(value) != "" {
			values = append(values, value)
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch state {
		case seekKey:
			if c == '"' {
				state = inKey
				start = i + 1
				escaped = false
			}

		case inKey:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				state = seekColon
			}

		case seekColon:
			switch {
			case c == ':':
				state = seekValue
			case c == ' ' || c == '\t' || c == '\n' || c == '\r':
				// keep waiting
			default:
				// Not a key after all; restart the search.
				state = seekKey
			}

		case seekValue:
			switch {
			case c == ' ' || c == '\t' || c == '\n' || c == '\r':
				// keep waiting
			case c == '"':
				state = inQuotedValue
				start = i + 1
				escaped = false
			default:
				// Unquoted value: skip to the end of it and resume.
				for i < len(s) && s[i] != ',' && s[i] != '}' {
					i++
				}
				state = seekKey
			}

		case inQuotedValue:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				flush(s[start:i], false)
				state = seekKey
			}
		}
	}

	// Truncated mid-value: everything after the opening quote is the value.
	if state == inQuotedValue && start < len(s) {
		flush(s[start:], true)
	}

	return values, len(values) > 0
}

var (
	leadingJSONPunct = regexp.MustCompile(`^[\s"{]+`)
	leadingKeyPrefix = regexp.MustCompile(`^[A-Za-z0-9_-]+\s*[:：]\s*`)
)

// stripLeadingJSONNoise is the regressive fallback when no key/value pair
// could be extracted: shave structural punctuation off both ends and drop a
// bare leading key label.
func stripLeadingJSONNoise(s string) string {
	s = leadingJSONPunct.ReplaceAllString(s, "")
	if idx := strings.IndexAny(s, `"}`); idx >= 0 {
		s = s[:idx]
	}
	s = leadingKeyPrefix.ReplaceAllString(s, "")
	return strings.TrimSpace(unescapeQuotes(s))
}

func unescapeQuotes(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}
