// Package redact scrubs connection strings, credentials, SQL text, file paths
// and host names out of error messages before they are logged.
package redact

import "regexp"

// Placeholders substituted for each kind of sensitive fragment.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
	PathPlaceholder       = "[REDACTED_PATH]"
	HostPlaceholder       = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order; SQL and paths go before hosts so that dotted
// identifiers inside them are not reported twice.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|mysql|db|database)://[^@\s]+@`),
		placeholder: CredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\s*[=:]\s*['"]?[^'"&\s]+['"]?`),
		placeholder: CredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b(?:WITH|SELECT|INSERT INTO|UPDATE|DELETE FROM)\b[^\n;]*`),
		placeholder: SQLPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?:/[\w.-]+){2,}`),
		placeholder: PathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		placeholder: HostPlaceholder,
	},
}

// String redacts sensitive fragments from input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive fragments from err.Error(). A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
