package bot

import (
	"regexp"
	"strings"
)

var punctuationRe = regexp.MustCompile(`[^\w\s]`)

// Normalize lowercases raw input, strips every character that is neither a
// word character nor whitespace and trims surrounding whitespace, so that
// "Hello, there!" and "hello there" match the same patterns. Internal
// whitespace runs are left as-is. Idempotent: punctuation is removed before
// the trim so a second pass finds nothing to change.
func Normalize(raw string) string {
	cleaned := punctuationRe.ReplaceAllString(strings.ToLower(raw), "")
	return strings.TrimSpace(cleaned)
}
