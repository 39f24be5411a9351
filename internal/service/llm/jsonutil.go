package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"braindumper/internal/domain"
)

// ExtractObject returns the JSON object contained in a model completion.
// Models sometimes wrap their output in prose or markdown fences, so if the
// text is not valid JSON on its own the first brace-balanced object span is
// extracted and validated instead.
func ExtractObject(text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty completion", domain.ErrMalformedResponse)
	}

	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return []byte(trimmed), nil
	}

	span, ok := firstObjectSpan(trimmed)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object found in completion", domain.ErrMalformedResponse)
	}
	if !json.Valid([]byte(span)) {
		return nil, fmt.Errorf("%w: extracted span is not valid JSON", domain.ErrMalformedResponse)
	}

	return []byte(span), nil
}

// firstObjectSpan scans for the first brace-balanced object, tracking string
// literals and escapes so braces inside strings do not count.
func firstObjectSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}

	return "", false
}
