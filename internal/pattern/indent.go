package pattern

import (
	"regexp"

	"glint/internal/scope"
)

// Indent family: hash comments, no block comments. Python carries
// triple-quoted strings across lines; bash carries both quote styles.

func newPythonTokenizer() *Tokenizer {
	return &Tokenizer{
		Name: "python",
		Rules: Rules{
			LineComments: []string{"#"},
			Strings: []StringRule{
				{Open: `"""`, Close: `"""`, Esc: '\\', Multi: true},
				{Open: `'''`, Close: `'''`, Esc: '\\', Multi: true},
				{Open: `"`, Close: `"`, Esc: '\\'},
				{Open: `'`, Close: `'`, Esc: '\\'},
			},
		},
		Passes: []Pass{
			{Scope: scope.CommentLine, Re: regexp.MustCompile(`#.*$`)},
			{Scope: scope.StringQuoted, Re: regexp.MustCompile(`[rRbBuUfF]{0,2}"""(?:.*?"""|.*$)`)},
			{Scope: scope.StringQuoted, Re: regexp.MustCompile(`[rRbBuUfF]{0,2}'''(?:.*?'''|.*$)`)},
			{Scope: scope.StringQuoted, Re: regexp.MustCompile(`[rRbBuUfF]{0,2}"(?:[^"\\]|\\.)*(?:"|$)`)},
			{Scope: scope.StringQuoted, Re: regexp.MustCompile(`[rRbBuUfF]{0,2}'(?:[^'\\]|\\.)*(?:'|$)`)},
			wordsPass(scope.KeywordDecl,
				"def", "class", "lambda", "import", "from", "global", "nonlocal"),
			wordsPass(scope.Keyword,
				"if", "elif", "else", "for", "while", "break", "continue", "return", "yield",
				"try", "except", "finally", "raise", "with", "as", "pass", "del", "assert",
				"in", "is", "not", "and", "or", "async", "await", "match", "case"),
			wordsPass(scope.TypeName,
				"int", "str", "float", "complex", "bool", "list", "dict", "set", "tuple",
				"bytes", "bytearray", "frozenset", "object", "type"),
			wordsPass(scope.Boolean, "True", "False", "None"),
			operatorPass(),
			callPass(),
			capsConstantPass(),
			identifierPass(),
			numericPass(),
			{Scope: scope.Annotation, Re: regexp.MustCompile(`@[A-Za-z_][\w.]*`)},
		},
	}
}

func newBashTokenizer() *Tokenizer {
	return &Tokenizer{
		Name: "bash",
		Rules: Rules{
			LineComments: []string{"#"},
			Strings: []StringRule{
				{Open: `"`, Close: `"`, Esc: '\\', Multi: true},
				{Open: `'`, Close: `'`, Multi: true},
				{Open: "`", Close: "`", Esc: '\\'},
			},
		},
		Passes: []Pass{
			{Scope: scope.CommentLine, Re: regexp.MustCompile(`(?:^|\s)(#.*)$`), Sub: 1},
			doubleQuotePass(),
			{Scope: scope.StringQuoted, Re: regexp.MustCompile(`'[^']*(?:'|$)`)},
			templatePass(),
			wordsPass(scope.KeywordDecl,
				"function", "local", "declare", "readonly", "export", "alias", "typeset"),
			wordsPass(scope.Keyword,
				"if", "then", "else", "elif", "fi", "for", "while", "until", "do", "done",
				"case", "esac", "in", "select", "time", "return", "break", "continue",
				"shift", "exit", "source", "set", "unset", "trap", "eval", "exec"),
			{Scope: scope.Parameter, Re: regexp.MustCompile(`(?:^|\s)(-{1,2}[A-Za-z][\w-]*)`), Sub: 1},
			operatorPass(),
			{Scope: scope.Variable, Re: regexp.MustCompile(`\$\{[^}]*\}?|\$[A-Za-z_]\w*|\$[0-9@#?*$!-]`)},
			capsConstantPass(),
			numericPass(),
		},
	}
}
