package pattern

import (
	"regexp"

	"glint/internal/scope"
)

// Markup family: HTML and XML share one pass set. The scanner tracks only
// <!-- --> comments; attribute quotes never span lines in practice and
// body-text apostrophes would confuse a string scanner.

func newMarkupTokenizer(name string) *Tokenizer {
	return &Tokenizer{
		Name: name,
		Rules: Rules{
			CommentOpen:  "<!--",
			CommentClose: "-->",
		},
		Passes: []Pass{
			{Scope: scope.CommentBlock, Re: regexp.MustCompile(`<!--.*?-->|<!--.*$`)},
			{Scope: scope.StringQuoted, Re: regexp.MustCompile(`=\s*("(?:[^"\\]|\\.)*(?:"|$))`), Sub: 1},
			{Scope: scope.StringQuoted, Re: regexp.MustCompile(`=\s*('[^']*(?:'|$))`), Sub: 1},
			{Scope: scope.Preprocessor, Re: regexp.MustCompile(`<![A-Za-z][^>]*>?|<\?[A-Za-z-]+|\?>`)},
			{Scope: scope.Tag, Re: regexp.MustCompile(`</?\s*([A-Za-z][\w.:-]*)`), Sub: 1},
			{Scope: scope.AttributeName, Re: regexp.MustCompile(`\b([A-Za-z_][\w.:-]*)\s*=`), Sub: 1},
			{Scope: scope.Entity, Re: regexp.MustCompile(`&#?[A-Za-z0-9]+;`)},
			{Scope: scope.Operator, Re: regexp.MustCompile(`[<>/=]+`)},
		},
	}
}
