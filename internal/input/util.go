package input

import "strings"

// trimToken strips surrounding whitespace and, for the reference file's
// `#`-comment convention, a trailing same-line comment is never present
// in practice — callers that need comment-stripping use stripComment
// instead.
func trimToken(s string) string {
	return strings.TrimSpace(s)
}

// stripComment removes everything from the first '#' onward and
// trims the result, implementing the reference file's "optional
// #-prefixed comments" rule (spec.md §6). A blank result means the line
// was entirely comment or whitespace.
func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
