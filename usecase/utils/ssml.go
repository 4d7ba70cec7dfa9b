package utils

import (
	"regexp"
	"strings"
)

var (
	speakOpenRe  = regexp.MustCompile(`(?i)^\s*<speak(?:\s[^>]*)?>`)
	speakCloseRe = regexp.MustCompile(`(?i)</speak>\s*$`)

	ssmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
)

// NormalizeEnvelope strips one enclosing <speak> element so each fragment can
// be wrapped again on its own.
func NormalizeEnvelope(markup string) string {
	markup = speakOpenRe.ReplaceAllString(markup, "")
	markup = speakCloseRe.ReplaceAllString(markup, "")
	return strings.TrimSpace(markup)
}

// EscapeText turns plain text into SSML-safe character data.
func EscapeText(text string) string {
	return strings.TrimSpace(ssmlEscaper.Replace(text))
}
