package model

import "unicode/utf8"

// MaxDocsPerInsight is the upper bound of document references attached to
// one insight during enrichment.
const MaxDocsPerInsight = 3

// MaxSnippetLength bounds the snippet text of a single document reference.
const MaxSnippetLength = 300

// DocResult is a single external document reference. It is produced fresh
// per enrichment call and never cached.
type DocResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// EnrichedInsight pairs an insight with its best-effort enrichment. The
// insight is an owned value, not a reference into shared state. Docs and
// ImplementationGuide may be empty when enrichment degraded.
type EnrichedInsight struct {
	Insight             Insight     `json:"insight"`
	Docs                []DocResult `json:"docs"`
	ImplementationGuide string      `json:"implementation_guide"`
}

// TruncateTo shortens s to at most n bytes without splitting a multi-byte
// rune across the cut, so the result is always valid UTF-8 when s is.
func TruncateTo(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// TruncateSnippet enforces the snippet length bound
func TruncateSnippet(s string) string {
	return TruncateTo(s, MaxSnippetLength)
}
