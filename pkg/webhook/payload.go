package webhook

import (
	"fmt"
	"strconv"
	"strings"
)

// LookupPath resolves a dotted path ("issue.fields.summary") against a parsed
// payload. Returns (nil, false) when any segment is missing or not an object.
func LookupPath(payload map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = payload
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// LookupString resolves a dotted path and renders the value as a string.
// Scalars are formatted; objects and arrays yield the empty string.
func LookupString(payload map[string]any, path string) string {
	value, ok := LookupPath(payload, path)
	if !ok {
		return ""
	}
	return scalarString(value)
}

func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		// JSON numbers decode as float64; render integers without a decimal
		// point so issue numbers read as "42", not "42.000000".
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// conditionsMatch reports whether every condition entry equals the payload
// value at its dotted path. Scalar comparison is string-normalized so a
// condition written as the number 42 matches a payload string "42" and vice
// versa.
func conditionsMatch(conditions map[string]any, payload map[string]any) bool {
	for path, want := range conditions {
		got, ok := LookupPath(payload, path)
		if !ok {
			return false
		}
		if scalarString(got) != scalarString(want) {
			return false
		}
	}
	return true
}
