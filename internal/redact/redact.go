// Package redact strips sensitive information from strings before they
// are logged. Credentials, connection strings, tokens, and email
// addresses in driver or library error text must never reach log sinks
// verbatim.
package redact

import "regexp"

// Redaction placeholders.
const (
	redactedCredential = "[REDACTED_CREDENTIAL]"
	redactedKey        = "[REDACTED_KEY]"
	redactedJWT        = "[REDACTED_JWT]"
	redactedEmail      = "[REDACTED_EMAIL]"
)

// replacement pairs a precompiled pattern with its placeholder.
type replacement struct {
	pattern     *regexp.Regexp
	placeholder string
}

var replacements = []replacement{
	// Connection strings with embedded credentials (postgres://user:pw@...)
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql|redis|amqp)://[^@\s]+@`), redactedCredential},

	// password=..., pwd: "..." style fragments
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`), redactedCredential},

	// API keys, secrets, bearer values
	{regexp.MustCompile(`(?i)(api[_-]?key|secret|bearer|authorization)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), redactedKey},

	// JWTs: three base64url segments starting with eyJ
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), redactedJWT},

	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), redactedEmail},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range replacements {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
