package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in drover.yaml content using Go
// template syntax, {{.VAR_NAME}}. Template syntax rather than $VAR because
// drover.yaml carries values where a literal $ is common: masking regex
// patterns (^secret.*$), webhook response templates, passwords. Those pass
// through untouched.
//
// Missing variables expand to empty string; validation catches required
// fields left empty.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// Content without template syntax still has to load.
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split on the first = only; values may contain =.
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}

	return buf.Bytes()
}
