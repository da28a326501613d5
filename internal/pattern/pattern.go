// Package pattern implements the line-oriented fallback highlighting
// strategy: one tokenizer per language family, each an ordered sequence of
// regular-expression passes over a single line, plus a document-wide
// scanner that tells every line whether it starts inside a block comment
// or an unterminated multi-line string.
package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"glint/internal/scope"
	"glint/internal/token"
)

// Pass proposes tokens for one scope by scanning the raw line text.
// Sub selects a capture group to token; 0 means the whole match.
type Pass struct {
	Scope string
	Re    *regexp.Regexp
	Sub   int
}

// Tokenizer is an immutable pass pipeline for one language. Pass order is
// a priority list: a later pass's candidate is discarded when its start
// column falls inside a span an earlier pass already accepted. The order
// is deliberate (comments before strings before keywords before
// identifiers before literals) and must not be rearranged.
type Tokenizer struct {
	Name   string
	Rules  Rules
	Passes []Pass
}

// LineTokens tokenizes one line given its starting lexical state. Pure:
// identical inputs yield identical outputs.
func (t *Tokenizer) LineTokens(line string, st LineState) []token.Token {
	runeLen := utf8.RuneCountInString(line)
	if runeLen == 0 {
		return nil
	}

	byteToRune := buildByteToRune(line)
	accepted := make([]token.Token, 0, 16)

	// A line opening inside a carried construct is covered up to the
	// closing delimiter (or in full) before any pass runs.
	if st.Kind != StateNone {
		end, closed := closeOpenConstruct(line, st, t.Rules)
		sc := scope.CommentBlock
		if st.Kind == StateInString {
			sc = scope.StringQuoted
		}
		if r := byteToRune[end]; r > 0 {
			accepted = append(accepted, token.Token{Start: 0, End: r, Scope: sc})
		}
		if !closed {
			return token.Normalize(accepted, runeLen)
		}
	}

	for _, p := range t.Passes {
		for _, m := range p.Re.FindAllStringSubmatchIndex(line, -1) {
			lo, hi := m[0], m[1]
			if p.Sub > 0 && 2*p.Sub+1 < len(m) {
				lo, hi = m[2*p.Sub], m[2*p.Sub+1]
			}
			if lo < 0 || hi <= lo {
				continue
			}
			start := byteToRune[lo]
			if token.Covers(accepted, start) {
				continue
			}
			accepted = append(accepted, token.Token{Start: start, End: byteToRune[hi], Scope: p.Scope})
		}
	}

	return token.Normalize(accepted, runeLen)
}

// buildByteToRune maps every byte offset of line (inclusive of len(line))
// to the rune column containing it.
func buildByteToRune(line string) []int {
	m := make([]int, 0, len(line)+1)
	col := 0
	for _, r := range line {
		for i := 0; i < utf8.RuneLen(r); i++ {
			m = append(m, col)
		}
		col++
	}
	return append(m, col)
}

// Shared pass constructors. Word lists compile to \b-bounded alternations;
// the inputs are plain identifiers, so no quoting is needed.

func wordsPass(sc string, words ...string) Pass {
	return Pass{Scope: sc, Re: regexp.MustCompile(`\b(?:` + strings.Join(words, "|") + `)\b`)}
}

func lineCommentPass() Pass {
	return Pass{Scope: scope.CommentLine, Re: regexp.MustCompile(`//.*$`)}
}

func blockCommentPass() Pass {
	return Pass{Scope: scope.CommentBlock, Re: regexp.MustCompile(`/\*.*?\*/|/\*.*$`)}
}

func doubleQuotePass() Pass {
	return Pass{Scope: scope.StringQuoted, Re: regexp.MustCompile(`"(?:[^"\\]|\\.)*(?:"|$)`)}
}

func singleQuotePass() Pass {
	return Pass{Scope: scope.StringQuoted, Re: regexp.MustCompile(`'(?:[^'\\]|\\.)*(?:'|$)`)}
}

func charPass() Pass {
	return Pass{Scope: scope.StringQuoted, Re: regexp.MustCompile(`'(?:\\.|[^'\\])'`)}
}

func templatePass() Pass {
	return Pass{Scope: scope.StringQuoted, Re: regexp.MustCompile("`(?:[^`\\\\]|\\\\.)*(?:`|$)")}
}

func rawStringPass() Pass {
	return Pass{Scope: scope.StringQuoted, Re: regexp.MustCompile("`[^`]*(?:`|$)")}
}

func operatorPass() Pass {
	return Pass{Scope: scope.Operator, Re: regexp.MustCompile(`<<=|>>=|<<|>>|==|!=|<=|>=|&&|\|\||->|=>|::|\+\+|--|[+\-*/%=!<>&|^~?:;,.()\[\]{}]`)}
}

func callPass() Pass {
	return Pass{Scope: scope.FunctionName, Re: regexp.MustCompile(`\b([A-Za-z_]\w*)\s*\(`), Sub: 1}
}

func capsConstantPass() Pass {
	return Pass{Scope: scope.ConstantOther, Re: regexp.MustCompile(`\b[A-Z][A-Z0-9_]+\b`)}
}

func identifierPass() Pass {
	return Pass{Scope: scope.Variable, Re: regexp.MustCompile(`\b[A-Za-z_]\w*\b`)}
}

func numericPass() Pass {
	return Pass{Scope: scope.Numeric, Re: regexp.MustCompile(`\b(?:0[xX][0-9a-fA-F_]+|0[bB][01_]+|0[oO][0-7_]+|\d[\d_]*(?:\.\d+)?(?:[eE][+-]?\d+)?(?:[iuf]\d+|[fFlLuU]+)?)\b`)}
}
