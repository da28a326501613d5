package pattern

import (
	"regexp"

	"glint/internal/scope"
)

// C-like family: brace languages with // and /* */ comments. One
// tokenizer per language so keyword and type vocabularies stay honest;
// the pass skeleton is shared.

func clikeRules(extra ...StringRule) Rules {
	strings := []StringRule{
		{Open: `"`, Close: `"`, Esc: '\\'},
		{Open: `'`, Close: `'`, Esc: '\\'},
	}
	return Rules{
		LineComments: []string{"//"},
		CommentOpen:  "/*",
		CommentClose: "*/",
		Strings:      append(extra, strings...),
	}
}

func newGoTokenizer() *Tokenizer {
	return &Tokenizer{
		Name:  "go",
		Rules: clikeRules(StringRule{Open: "`", Close: "`", Multi: true}),
		Passes: []Pass{
			lineCommentPass(),
			blockCommentPass(),
			doubleQuotePass(),
			charPass(),
			rawStringPass(),
			wordsPass(scope.KeywordDecl,
				"func", "var", "const", "type", "struct", "interface", "map", "chan", "package", "import"),
			wordsPass(scope.Keyword,
				"if", "else", "for", "range", "switch", "case", "default", "return", "break",
				"continue", "goto", "fallthrough", "defer", "go", "select"),
			wordsPass(scope.TypeName,
				"bool", "string", "int", "int8", "int16", "int32", "int64", "uint", "uint8",
				"uint16", "uint32", "uint64", "uintptr", "byte", "rune", "float32", "float64",
				"complex64", "complex128", "error", "any"),
			wordsPass(scope.Boolean, "true", "false", "nil", "iota"),
			operatorPass(),
			callPass(),
			capsConstantPass(),
			identifierPass(),
			numericPass(),
		},
	}
}

func newJavaScriptTokenizer() *Tokenizer {
	return &Tokenizer{
		Name:  "javascript",
		Rules: clikeRules(StringRule{Open: "`", Close: "`", Esc: '\\', Multi: true}),
		Passes: []Pass{
			lineCommentPass(),
			blockCommentPass(),
			doubleQuotePass(),
			singleQuotePass(),
			templatePass(),
			wordsPass(scope.KeywordDecl,
				"var", "let", "const", "function", "class", "import", "export", "extends", "default", "from"),
			wordsPass(scope.Keyword,
				"if", "else", "for", "while", "do", "switch", "case", "return", "break",
				"continue", "throw", "try", "catch", "finally", "new", "delete", "typeof",
				"instanceof", "in", "of", "yield", "await", "async", "static", "get", "set",
				"this", "super", "void", "with", "debugger"),
			wordsPass(scope.Boolean, "true", "false", "null", "undefined", "NaN", "Infinity"),
			operatorPass(),
			callPass(),
			capsConstantPass(),
			identifierPass(),
			numericPass(),
			{Scope: scope.Annotation, Re: regexp.MustCompile(`@[A-Za-z_]\w*`)},
		},
	}
}

func newTypeScriptTokenizer() *Tokenizer {
	return &Tokenizer{
		Name:  "typescript",
		Rules: clikeRules(StringRule{Open: "`", Close: "`", Esc: '\\', Multi: true}),
		Passes: []Pass{
			lineCommentPass(),
			blockCommentPass(),
			doubleQuotePass(),
			singleQuotePass(),
			templatePass(),
			wordsPass(scope.KeywordDecl,
				"var", "let", "const", "function", "class", "import", "export", "extends",
				"implements", "interface", "type", "enum", "namespace", "declare", "abstract",
				"default", "from"),
			wordsPass(scope.Keyword,
				"if", "else", "for", "while", "do", "switch", "case", "return", "break",
				"continue", "throw", "try", "catch", "finally", "new", "delete", "typeof",
				"instanceof", "in", "of", "yield", "await", "async", "static", "get", "set",
				"this", "super", "void", "as", "is", "keyof", "infer", "satisfies", "readonly",
				"public", "private", "protected", "override"),
			wordsPass(scope.TypeName,
				"string", "number", "boolean", "any", "unknown", "never", "object", "symbol", "bigint"),
			wordsPass(scope.Boolean, "true", "false", "null", "undefined", "NaN", "Infinity"),
			operatorPass(),
			callPass(),
			capsConstantPass(),
			identifierPass(),
			numericPass(),
			{Scope: scope.Annotation, Re: regexp.MustCompile(`@[A-Za-z_]\w*`)},
		},
	}
}

func newCTokenizer() *Tokenizer {
	return &Tokenizer{
		Name:  "c",
		Rules: clikeRules(),
		Passes: []Pass{
			lineCommentPass(),
			blockCommentPass(),
			doubleQuotePass(),
			charPass(),
			{Scope: scope.Preprocessor, Re: regexp.MustCompile(`^\s*#\s*[a-z]+`)},
			wordsPass(scope.KeywordDecl,
				"struct", "union", "enum", "typedef", "extern", "static", "inline", "register",
				"auto", "const", "volatile", "signed", "unsigned"),
			wordsPass(scope.Keyword,
				"if", "else", "for", "while", "do", "switch", "case", "default", "return",
				"break", "continue", "goto", "sizeof"),
			wordsPass(scope.TypeName,
				"void", "char", "short", "int", "long", "float", "double", "bool", "size_t",
				"ssize_t", "int8_t", "int16_t", "int32_t", "int64_t", "uint8_t", "uint16_t",
				"uint32_t", "uint64_t", "intptr_t", "uintptr_t", "ptrdiff_t", "FILE"),
			wordsPass(scope.Boolean, "NULL", "true", "false"),
			operatorPass(),
			callPass(),
			capsConstantPass(),
			identifierPass(),
			numericPass(),
		},
	}
}

func newCPPTokenizer() *Tokenizer {
	return &Tokenizer{
		Name:  "cpp",
		Rules: clikeRules(),
		Passes: []Pass{
			lineCommentPass(),
			blockCommentPass(),
			doubleQuotePass(),
			charPass(),
			{Scope: scope.Preprocessor, Re: regexp.MustCompile(`^\s*#\s*[a-z]+`)},
			wordsPass(scope.KeywordDecl,
				"struct", "union", "enum", "typedef", "extern", "static", "inline", "auto",
				"const", "volatile", "class", "namespace", "template", "typename", "using",
				"public", "private", "protected", "virtual", "friend", "operator", "explicit",
				"mutable", "constexpr", "consteval", "constinit", "concept", "requires"),
			wordsPass(scope.Keyword,
				"if", "else", "for", "while", "do", "switch", "case", "default", "return",
				"break", "continue", "goto", "sizeof", "new", "delete", "this", "try",
				"catch", "throw", "noexcept", "static_cast", "dynamic_cast", "const_cast",
				"reinterpret_cast", "co_await", "co_yield", "co_return"),
			wordsPass(scope.TypeName,
				"void", "char", "short", "int", "long", "float", "double", "bool", "wchar_t",
				"char8_t", "char16_t", "char32_t", "size_t", "int8_t", "int16_t", "int32_t",
				"int64_t", "uint8_t", "uint16_t", "uint32_t", "uint64_t"),
			wordsPass(scope.Boolean, "nullptr", "NULL", "true", "false"),
			operatorPass(),
			callPass(),
			capsConstantPass(),
			identifierPass(),
			numericPass(),
		},
	}
}

func newRustTokenizer() *Tokenizer {
	return &Tokenizer{
		Name: "rust",
		Rules: Rules{
			LineComments: []string{"//"},
			CommentOpen:  "/*",
			CommentClose: "*/",
			Strings:      []StringRule{{Open: `"`, Close: `"`, Esc: '\\', Multi: true}},
		},
		Passes: []Pass{
			lineCommentPass(),
			blockCommentPass(),
			doubleQuotePass(),
			charPass(),
			wordsPass(scope.KeywordDecl,
				"fn", "let", "mut", "const", "static", "struct", "enum", "trait", "impl",
				"mod", "use", "pub", "crate", "type", "union", "unsafe", "extern", "dyn"),
			wordsPass(scope.Keyword,
				"if", "else", "match", "for", "while", "loop", "break", "continue", "return",
				"in", "ref", "move", "async", "await", "where", "as", "self", "Self", "super"),
			wordsPass(scope.TypeName,
				"i8", "i16", "i32", "i64", "i128", "isize", "u8", "u16", "u32", "u64", "u128",
				"usize", "f32", "f64", "bool", "char", "str", "String", "Vec", "Option",
				"Result", "Box", "Rc", "Arc", "HashMap", "HashSet"),
			wordsPass(scope.Boolean, "true", "false", "None"),
			operatorPass(),
			callPass(),
			{Scope: scope.FunctionName, Re: regexp.MustCompile(`\b([A-Za-z_]\w*)!`), Sub: 1},
			capsConstantPass(),
			identifierPass(),
			numericPass(),
			{Scope: scope.Annotation, Re: regexp.MustCompile(`#\[[^\]]*(?:\]|$)`)},
		},
	}
}

func newZigTokenizer() *Tokenizer {
	return &Tokenizer{
		Name: "zig",
		Rules: Rules{
			LineComments: []string{"//"},
			Strings: []StringRule{
				{Open: `"`, Close: `"`, Esc: '\\'},
				{Open: `'`, Close: `'`, Esc: '\\'},
			},
		},
		Passes: []Pass{
			lineCommentPass(),
			doubleQuotePass(),
			charPass(),
			{Scope: scope.StringQuoted, Re: regexp.MustCompile(`\\\\.*$`)},
			wordsPass(scope.KeywordDecl,
				"fn", "const", "var", "pub", "struct", "enum", "union", "error", "comptime",
				"export", "extern", "inline", "noinline", "test", "threadlocal", "usingnamespace"),
			wordsPass(scope.Keyword,
				"if", "else", "while", "for", "switch", "break", "continue", "return",
				"defer", "errdefer", "try", "catch", "orelse", "and", "or", "unreachable",
				"async", "await", "suspend", "resume"),
			wordsPass(scope.TypeName,
				"void", "bool", "type", "anytype", "anyerror", "anyopaque", "noreturn",
				"u8", "u16", "u32", "u64", "u128", "usize", "i8", "i16", "i32", "i64",
				"i128", "isize", "f16", "f32", "f64", "f128", "c_int", "c_uint", "c_long"),
			wordsPass(scope.Boolean, "true", "false", "null", "undefined"),
			operatorPass(),
			{Scope: scope.FunctionName, Re: regexp.MustCompile(`@[A-Za-z]\w*`)},
			callPass(),
			capsConstantPass(),
			identifierPass(),
			numericPass(),
		},
	}
}

func newJSONTokenizer() *Tokenizer {
	return &Tokenizer{
		Name: "json",
		Rules: Rules{
			LineComments: []string{"//"},
			CommentOpen:  "/*",
			CommentClose: "*/",
			Strings:      []StringRule{{Open: `"`, Close: `"`, Esc: '\\'}},
		},
		Passes: []Pass{
			lineCommentPass(),
			blockCommentPass(),
			{Scope: scope.PropertyName, Re: regexp.MustCompile(`("(?:[^"\\]|\\.)*")\s*:`), Sub: 1},
			doubleQuotePass(),
			wordsPass(scope.Boolean, "true", "false", "null"),
			{Scope: scope.Operator, Re: regexp.MustCompile(`[{}\[\]:,-]`)},
			numericPass(),
		},
	}
}
