package privacy

import "regexp"

// redactedToken replaces every PII match. It contains no digits or @, so
// sanitization is idempotent on its own output.
const redactedToken = "[REDACTED]"

// piiPatterns are applied in sequence: emails, phone numbers, credit-card
// digit groups, SSNs, IPv4 addresses.
var piiPatterns = []*regexp.Regexp{
	// email addresses
	regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
	// phone numbers: +1 (555) 123-4567, 555-123-4567, 555.123.4567
	regexp.MustCompile(`(\+?\d{1,3}[\s.\-]?)?\(\d{2,4}\)[\s.\-]?\d{3}[\s.\-]?\d{4}`),
	regexp.MustCompile(`\b\d{3}[\s.\-]\d{3}[\s.\-]\d{4}\b`),
	// credit-card-like digit groups
	regexp.MustCompile(`\b\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4}\b`),
	// SSN
	regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	// IPv4
	regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`),
}

// Sanitize redacts PII from text and truncates it to the configured
// maximum content size, appending "..." when cut. Empty input returns
// the empty string.
func (m *Manager) Sanitize(text string) string {
	if text == "" {
		return ""
	}

	for _, pattern := range piiPatterns {
		text = pattern.ReplaceAllString(text, redactedToken)
	}

	maxSize := m.Settings().MaxContentSize
	if maxSize > 0 {
		runes := []rune(text)
		if len(runes) > maxSize {
			text = string(runes[:maxSize]) + "..."
		}
	}

	m.LogDataUsage("content_sanitized", len(text), "")
	return text
}
