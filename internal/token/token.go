// Package token defines the output contract of the highlighting engine:
// per-line tokens addressed in rune columns, and the coordinate types used
// to describe document edits. Both highlighting strategies produce these
// tokens; the theme layer consumes the scope strings without ever seeing
// colors here.
package token

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Token is a half-open column range [Start, End) within a single line,
// 0-indexed in runes, classified by a scope identifier such as
// "comment.line" or "entity.name.function". Tokens for a line are sorted
// ascending by Start; gaps between tokens mean default styling.
type Token struct {
	Start int
	End   int
	Scope string
}

// Edit describes a document mutation in line/rune-column coordinates.
// Start and OldEnd address the pre-edit text, NewEnd the post-edit text.
type Edit struct {
	StartLine  int
	StartCol   int
	OldEndLine int
	OldEndCol  int
	NewEndLine int
	NewEndCol  int
}

// SplitLines splits document content into lines on "\n", normalizing
// "\r\n" first. The line separator is exactly one byte, which offset
// arithmetic elsewhere relies on.
func SplitLines(content string) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

// RuneColToByte converts a rune column within line to a byte offset,
// clamping past-end columns to the line's byte length.
func RuneColToByte(line string, col int) int {
	if col <= 0 {
		return 0
	}
	i := 0
	for off := range line {
		if i == col {
			return off
		}
		i++
	}
	return len(line)
}

// ByteToRune converts a byte offset within line to a rune column.
func ByteToRune(line string, off int) int {
	if off <= 0 {
		return 0
	}
	if off >= len(line) {
		return utf8.RuneCountInString(line)
	}
	return utf8.RuneCountInString(line[:off])
}

// Sort orders tokens ascending by Start, keeping the original order of
// tokens that share a start column. Acceptance order is meaningful for
// overlapping tokens, so the sort must be stable.
func Sort(tokens []Token) {
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Start < tokens[j].Start
	})
}

// Normalize clips tokens to [0, runeLen), drops empty or scopeless ones,
// sorts the rest, and merges adjacent same-scope tokens that touch exactly.
// Overlapping tokens are preserved as-is.
func Normalize(tokens []Token, runeLen int) []Token {
	if runeLen <= 0 || len(tokens) == 0 {
		return nil
	}

	clean := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Scope == "" {
			continue
		}
		if t.Start < 0 {
			t.Start = 0
		}
		if t.End > runeLen {
			t.End = runeLen
		}
		if t.End <= t.Start {
			continue
		}
		clean = append(clean, t)
	}
	if len(clean) == 0 {
		return nil
	}

	Sort(clean)

	out := clean[:0]
	for _, t := range clean {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.End == t.Start && last.Scope == t.Scope {
				last.End = t.End
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Covers reports whether column col falls inside any of the tokens.
func Covers(tokens []Token, col int) bool {
	for _, t := range tokens {
		if col >= t.Start && col < t.End {
			return true
		}
	}
	return false
}
