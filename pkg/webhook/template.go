package webhook

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{dotted.path}} with optional inner whitespace.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// RenderTemplate substitutes {{dotted.path}} placeholders with payload
// values. Missing paths render as the empty string. There are deliberately no
// loops, conditionals, or expressions; command templates stay inspectable.
func RenderTemplate(template string, payload map[string]any) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		path := placeholderPattern.FindStringSubmatch(match)[1]
		return LookupString(payload, path)
	})
}

// containsPhrase reports whether phrase occurs in text at word granularity,
// case-insensitive. "fix" must not match inside "prefix".
func containsPhrase(text, phrase string) bool {
	text = strings.ToLower(text)
	phrase = strings.ToLower(phrase)

	for start := 0; ; {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(phrase)
		beforeOK := idx == 0 || isWordBoundary(text[idx-1])
		afterOK := end == len(text) || isWordBoundary(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordBoundary(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return false
	case c == '_' || c == '-':
		return false
	default:
		return true
	}
}
