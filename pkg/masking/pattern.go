package masking

// Pattern is one regex masking rule. Replacement may reference capture groups
// with $1 syntax.
type Pattern struct {
	Pattern     string
	Replacement string
	Description string
}

// builtinPatterns covers credential shapes that commonly leak into CLI
// transcripts. Patterns are deliberately narrow; a false negative is
// preferable to mangling ordinary output.
var builtinPatterns = map[string]Pattern{
	"slack_token": {
		Pattern:     `xox[baprs]-[0-9A-Za-z-]{10,}`,
		Replacement: "***SLACK_TOKEN***",
		Description: "Slack bot/user/app tokens",
	},
	"github_token": {
		Pattern:     `(?:gh[pousr]_[0-9A-Za-z]{36,}|github_pat_[0-9A-Za-z_]{22,})`,
		Replacement: "***GITHUB_TOKEN***",
		Description: "GitHub personal access tokens",
	},
	"aws_access_key": {
		Pattern:     `\bAKIA[0-9A-Z]{16}\b`,
		Replacement: "***AWS_ACCESS_KEY***",
		Description: "AWS access key IDs",
	},
	"bearer_token": {
		Pattern:     `(?i)\bbearer\s+[0-9A-Za-z._~+/=-]{16,}`,
		Replacement: "Bearer ***MASKED***",
		Description: "Authorization bearer tokens",
	},
	"secret_assignment": {
		Pattern:     `(?i)\b(api[_-]?key|secret|token|password|passwd)(["']?\s*[:=]\s*["']?)[^\s"']{8,}`,
		Replacement: "$1$2***MASKED***",
		Description: "key=value style secret assignments",
	},
	"private_key_block": {
		Pattern:     `-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`,
		Replacement: "***PRIVATE_KEY***",
		Description: "PEM private key blocks",
	},
}
