package pattern

import (
	"regexp"

	"glint/internal/scope"
)

// Stylesheet family: CSS plus the SCSS superset (// comments, $variables).

func newStylesheetTokenizer(name string, scss bool) *Tokenizer {
	passes := make([]Pass, 0, 16)
	if scss {
		passes = append(passes, lineCommentPass())
	}
	passes = append(passes,
		blockCommentPass(),
		doubleQuotePass(),
		singleQuotePass(),
		Pass{Scope: scope.Keyword, Re: regexp.MustCompile(`@[A-Za-z-]+`)},
		Pass{Scope: scope.Keyword, Re: regexp.MustCompile(`!\s*important\b`)},
		Pass{Scope: scope.AttributeName, Re: regexp.MustCompile(`::?(?:hover|focus|active|visited|link|checked|disabled|enabled|empty|target|root|first-child|last-child|only-child|nth-child|nth-of-type|first-of-type|last-of-type|not|is|where|has|before|after|placeholder|selection|focus-within|focus-visible|first-line|first-letter|marker|backdrop)\b`)},
		Pass{Scope: scope.Operator, Re: regexp.MustCompile(`[{}();:,>+~*&]`)},
		Pass{Scope: scope.PropertyName, Re: regexp.MustCompile(`(?:^|[{(;]\s*)([A-Za-z-][\w-]*)\s*:`), Sub: 1},
	)
	if scss {
		passes = append(passes, Pass{Scope: scope.Variable, Re: regexp.MustCompile(`\$[A-Za-z-][\w-]*`)})
	}
	passes = append(passes,
		Pass{Scope: scope.FunctionName, Re: regexp.MustCompile(`\b([A-Za-z-][\w-]*)\(`), Sub: 1},
		Pass{Scope: scope.Numeric, Re: regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b`)},
		Pass{Scope: scope.Numeric, Re: regexp.MustCompile(`\b\d+(?:\.\d+)?(?:px|em|rem|ex|ch|vw|vh|vmin|vmax|cm|mm|in|pt|pc|deg|rad|grad|turn|ms|s|hz|khz|dpi|dpcm|dppx|fr|%)?`)},
		Pass{Scope: scope.AttributeName, Re: regexp.MustCompile(`\.[A-Za-z_-][\w-]*`)},
		Pass{Scope: scope.AttributeName, Re: regexp.MustCompile(`#[A-Za-z_-][\w-]*`)},
		wordsPass(scope.Tag,
			"html", "body", "head", "div", "span", "a", "p", "ul", "ol", "li", "h1", "h2",
			"h3", "h4", "h5", "h6", "table", "tr", "td", "th", "thead", "tbody", "img",
			"input", "button", "form", "label", "select", "option", "textarea", "nav",
			"header", "footer", "section", "article", "aside", "main", "pre", "code",
			"em", "strong", "small", "br", "hr", "iframe", "video", "audio", "canvas", "svg"),
	)

	lineComments := []string(nil)
	if scss {
		lineComments = []string{"//"}
	}
	return &Tokenizer{
		Name: name,
		Rules: Rules{
			LineComments: lineComments,
			CommentOpen:  "/*",
			CommentClose: "*/",
			Strings: []StringRule{
				{Open: `"`, Close: `"`, Esc: '\\'},
				{Open: `'`, Close: `'`, Esc: '\\'},
			},
		},
		Passes: passes,
	}
}
