package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	punctuationRegex    = regexp.MustCompile(`[^\w\s]+`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes text before any comparison: lowercase, every run of
// characters that are neither word characters nor whitespace replaced by a
// space, whitespace collapsed, ends trimmed. Word characters are ASCII letters,
// digits and underscore, so the result is always ASCII.
//
// Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	result := strings.ToLower(text)
	result = punctuationRegex.ReplaceAllString(result, " ")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
