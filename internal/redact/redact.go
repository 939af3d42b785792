// Package redact scrubs sensitive material from strings before they reach
// logs or error responses. The pipeline talks to Postgres, S3 and an LLM
// provider, so the patterns target the credentials those integrations leak
// most readily: connection URLs, API keys and signed asset URLs.
package redact

import "regexp"

// Placeholders substituted for matched secrets.
const (
	credentialPlaceholder = "[REDACTED_CREDENTIAL]"
	keyPlaceholder        = "[REDACTED_KEY]"
	hostPlaceholder       = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

var rules = []rule{
	// Database connection URLs with embedded credentials.
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`), credentialPlaceholder + "@"},

	// Provider API keys passed as query params or headers echoed into errors.
	{regexp.MustCompile(`(?i)(api[_-]?key|x-goog-api-key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), keyPlaceholder},

	// AWS access key IDs.
	{regexp.MustCompile(`\bAKIA[A-Z0-9]{12,}\b`), keyPlaceholder},

	// Presigned URL signatures.
	{regexp.MustCompile(`(?i)x-amz-signature=[a-f0-9]+`), keyPlaceholder},

	// Internal host:port pairs from dial errors.
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}:\d{1,5}\b`), hostPlaceholder},
}

// String replaces every recognized secret in the input with a placeholder.
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

// Error scrubs an error's message. Returns the empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
