// Package masking scrubs credential-shaped strings from task output before it
// is stored or broadcast. The CLI subprocess reads tokens and repository
// contents; its transcript must not replay them to dashboards.
package masking

import (
	"log/slog"
	"regexp"
	"sort"
)

// compiledPattern holds a pre-compiled regex pattern with its replacement.
type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Service applies masking patterns to output text. Created once at startup;
// thread-safe and stateless aside from the compiled patterns.
type Service struct {
	patterns []*compiledPattern
}

// NewService creates a masking service from the built-in patterns plus any
// custom ones. All patterns are compiled eagerly; invalid patterns are logged
// and skipped.
func NewService(custom map[string]Pattern) *Service {
	s := &Service{}
	s.compile(builtinPatterns)
	s.compile(custom)

	// Deterministic application order.
	sort.Slice(s.patterns, func(i, j int) bool {
		return s.patterns[i].name < s.patterns[j].name
	})

	slog.Info("Masking service initialized", "patterns", len(s.patterns))
	return s
}

func (s *Service) compile(patterns map[string]Pattern) {
	for name, p := range patterns {
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &compiledPattern{
			name:        name,
			regex:       compiled,
			replacement: p.Replacement,
		})
	}
}

// Mask replaces every pattern match in the text. Nil-safe: a nil service
// returns the text unchanged.
func (s *Service) Mask(text string) string {
	if s == nil || text == "" {
		return text
	}
	for _, p := range s.patterns {
		text = p.regex.ReplaceAllString(text, p.replacement)
	}
	return text
}
