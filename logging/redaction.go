package logging

import "regexp"

var sensitiveKeyPattern = regexp.MustCompile(`(?i)(password|passwd|token|api[_-]?key|secret|credential)`)

const redactedValue = "[REDACTED]"

// RedactSensitive hides values whose key names a secret.
func RedactSensitive(key string, value any) any {
	if sensitiveKeyPattern.MatchString(key) {
		return redactedValue
	}
	return value
}
