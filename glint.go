// Package glint is an incremental syntax-highlighting engine for
// terminal-rendered editors. A Session owns the highlight state for one
// document: it resolves a language to a strategy (structural parse tree
// when a grammar exists, line-pattern passes otherwise), applies edits
// incrementally, and serves per-line tokens from a cache. Tokens carry
// theme-independent scope strings; picking colors is the theme layer's
// job.
package glint

import (
	"strings"

	"glint/internal/lang"
	"glint/internal/pattern"
	"glint/internal/structural"
	"glint/internal/token"
)

// Token is a half-open rune-column range [Start, End) within one line
// plus a scope identifier. Tokens are sorted ascending by Start; gaps
// mean default styling.
type Token = token.Token

// Edit describes a document mutation in line/rune-column coordinates:
// Start and OldEnd address the pre-edit text, NewEnd the post-edit text.
type Edit = token.Edit

// Strategy names how a session produces tokens.
type Strategy int

const (
	Unsupported Strategy = iota
	Structural
	Pattern
)

func (s Strategy) String() string {
	switch s {
	case Structural:
		return "structural"
	case Pattern:
		return "pattern"
	default:
		return "unsupported"
	}
}

// IsLanguageSupported reports whether id resolves to either strategy.
func IsLanguageSupported(id string) bool {
	lid := normalizeID(id)
	if lid == "" || lid == lang.Plain || !lang.Known(lid) {
		return false
	}
	if structural.Supported(lid) {
		return true
	}
	_, ok := pattern.ForLanguage(lid)
	return ok
}

// Languages lists every supported language ID.
func Languages() []string {
	out := make([]string, 0, len(lang.All))
	for _, id := range lang.All {
		if IsLanguageSupported(string(id)) {
			out = append(out, string(id))
		}
	}
	return out
}

// DetectLanguage resolves a file path (and optionally its content, for
// shebang sniffing) to a language ID, or "" when detection fails.
func DetectLanguage(path string, content string) string {
	id := lang.DetectSource(path, content)
	if id == lang.Plain {
		return ""
	}
	return string(id)
}

func normalizeID(id string) lang.ID {
	return lang.ID(strings.ToLower(strings.TrimSpace(id)))
}
