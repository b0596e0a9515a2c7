// Package langdetect guesses the language of unlabeled code blocks so the
// renderer can attach a highlighting class. It combines go-enry with a
// small table of telltale signatures for short snippets, where the
// classifier alone is unreliable.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// signature recognizes a language from distinctive source text.
type signature struct {
	lang  string
	match func(code, trimmed string) bool
}

// signatures are checked in order after the shebang.
//
//nolint:gochecknoglobals // Read-only table.
var signatures = []signature{
	{"go", func(_, t string) bool { return strings.HasPrefix(t, "package ") }},
	{"python", func(c, _ string) bool {
		return strings.Contains(c, "__main__") ||
			(strings.Contains(c, "def ") && strings.Contains(c, "):"))
	}},
	{"html", func(_, t string) bool {
		lower := strings.ToLower(t)
		return strings.HasPrefix(lower, "<!doctype html") || strings.Contains(lower, "<html")
	}},
	{"json", func(_, t string) bool {
		return (strings.HasPrefix(t, "{") || strings.HasPrefix(t, "[")) && strings.Contains(t, `"`) &&
			(strings.HasSuffix(t, "}") || strings.HasSuffix(t, "]"))
	}},
	{"dockerfile", func(_, t string) bool { return strings.HasPrefix(t, "FROM ") }},
	{"sql", func(_, t string) bool {
		upper := strings.ToUpper(t)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(c, _ string) bool { return strings.Contains(c, "fn main()") || strings.Contains(c, "let mut ") }},
	{"javascript", func(c, _ string) bool {
		return strings.Contains(c, "console.log") || strings.Contains(c, "=>") || strings.Contains(c, "function ")
	}},
	{"yaml", looksLikeYAML},
}

// classifierCandidates bounds the enry classifier to languages likely to
// appear in prose documents.
//
//nolint:gochecknoglobals // Read-only list.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript", "Ruby", "Rust",
	"Java", "C", "C++", "SQL", "JSON", "YAML", "HTML", "CSS",
}

// Guess returns the fence tag of the language code is written in. ok is
// false when no strategy is confident.
func Guess(code string) (string, bool) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", false
	}

	if lang, safe := enry.GetLanguageByShebang([]byte(code)); safe {
		return fenceTag(lang), true
	}

	for _, sig := range signatures {
		if sig.match(code, trimmed) {
			return sig.lang, true
		}
	}

	if lang, safe := enry.GetLanguageByClassifier([]byte(code), classifierCandidates); safe && lang != "" {
		return fenceTag(lang), true
	}
	return "", false
}

// Canonical maps a fence tag or alias such as "js" or "golang" to the tag
// Guess would produce. Unknown names are returned lower-cased.
func Canonical(name string) string {
	if lang, ok := enry.GetLanguageByAlias(name); ok {
		return fenceTag(lang)
	}
	return strings.ToLower(name)
}

// fenceTag converts go-enry language names to fence tags.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}

// looksLikeYAML requires at least two "key: value" or "- item" lines.
func looksLikeYAML(code, _ string) bool {
	count := 0
	for line := range strings.SplitSeq(code, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "- "):
			count++
		case strings.Contains(line, ": ") && !strings.ContainsAny(line, "({\""):
			count++
		}
	}
	return count >= 2
}
