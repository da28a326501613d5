// Package scope defines the stable scope identifiers the engine emits and
// the static tables that map raw classification inputs onto them. Scopes
// classify syntactic roles only; themes turn them into colors elsewhere.
package scope

// The scope vocabulary. Dotted names follow the conventional theme-facing
// hierarchy so prefix matching ("comment.", "string.") works in consumers.
const (
	CommentLine   = "comment.line"
	CommentBlock  = "comment.block"
	StringQuoted  = "string.quoted"
	CharEscape    = "constant.character.escape"
	Entity        = "constant.character.entity"
	Numeric       = "constant.numeric"
	Boolean       = "constant.language"
	ConstantOther = "constant.other"
	Keyword       = "keyword"
	KeywordDecl   = "keyword.declaration"
	Operator      = "keyword.operator"
	Preprocessor  = "meta.preprocessor"
	Annotation    = "meta.annotation"
	FunctionName  = "entity.name.function"
	TypeName      = "entity.name.type"
	Tag           = "entity.name.tag"
	AttributeName = "entity.other.attribute-name"
	Variable      = "variable"
	Parameter     = "variable.parameter"
	PropertyName  = "support.type.property-name"
	Invalid       = "invalid"
)

// nodeKinds maps structural node kinds whose meaning is unambiguous on
// their own. Identifier-like kinds stay out: their scope depends on parent
// context and is resolved by the structural classifier.
var nodeKinds = map[string]string{
	"comment":       CommentBlock,
	"line_comment":  CommentLine,
	"block_comment": CommentBlock,

	"string":                     StringQuoted,
	"string_literal":             StringQuoted,
	"string_content":             StringQuoted,
	"string_fragment":            StringQuoted,
	"string_start":               StringQuoted,
	"string_end":                 StringQuoted,
	"interpreted_string_literal": StringQuoted,
	"raw_string_literal":         StringQuoted,
	"string_scalar":              StringQuoted,
	"single_quote_scalar":        StringQuoted,
	"double_quote_scalar":        StringQuoted,
	"char_literal":               StringQuoted,
	"character":                  StringQuoted,
	"rune_literal":               StringQuoted,
	"heredoc_body":               StringQuoted,
	"system_lib_string":          StringQuoted,
	"quoted_attribute_value":     StringQuoted,
	"regex_pattern":              StringQuoted,
	`"`:                          StringQuoted,
	"'":                          StringQuoted,
	"`":                          StringQuoted,
	"escape_sequence":            CharEscape,

	"number":            Numeric,
	"number_literal":    Numeric,
	"int_literal":       Numeric,
	"integer":           Numeric,
	"integer_literal":   Numeric,
	"float":             Numeric,
	"float_literal":     Numeric,
	"imaginary_literal": Numeric,

	"true":      Boolean,
	"false":     Boolean,
	"null":      Boolean,
	"nil":       Boolean,
	"none":      Boolean,
	"undefined": Boolean,

	"type_identifier": TypeName,
	"primitive_type":  TypeName,
	"predefined_type": TypeName,
	"builtin_type":    TypeName,

	"error": Invalid,
}

// ForNodeKind resolves a structural node kind through the exact table.
func ForNodeKind(kind string) (string, bool) {
	s, ok := nodeKinds[kind]
	return s, ok
}

// declWords are the keywords that introduce bindings or definitions; they
// get a scope distinct from plain keywords so themes can emphasize them.
var declWords = map[string]bool{
	"func": true, "fn": true, "def": true, "function": true, "lambda": true,
	"let": true, "const": true, "var": true, "val": true,
	"class": true, "struct": true, "enum": true, "union": true,
	"interface": true, "trait": true, "impl": true, "type": true,
	"typedef": true, "namespace": true, "module": true, "mod": true,
	"package": true, "import": true, "export": true, "use": true,
	"pub": true, "static": true, "extern": true,
}

var keywordWords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "case": true,
	"catch": true, "continue": true, "default": true, "defer": true,
	"do": true, "else": true, "fallthrough": true, "finally": true,
	"for": true, "from": true, "go": true, "if": true, "in": true,
	"include": true, "loop": true, "match": true, "mut": true, "new": true,
	"not": true, "or": true, "and": true, "raise": true, "range": true,
	"return": true, "select": true, "switch": true, "then": true,
	"try": true, "unsafe": true, "where": true, "while": true,
	"with": true, "yield": true,
}

var boolWords = map[string]bool{
	"true": true, "false": true, "null": true, "nil": true, "none": true,
	"undefined": true,
}

var operatorRunes = map[rune]bool{
	'+': true, '-': true, '*': true, '/': true, '%': true, '=': true,
	'!': true, '<': true, '>': true, '&': true, '|': true, '^': true,
	'~': true, ':': true, ';': true, ',': true, '.': true, '?': true,
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	'@': true, '#': true,
}

// ForLiteral resolves a leaf's literal text: operator and punctuation
// symbols, keywords, and the boolean/null words.
func ForLiteral(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	if boolWords[text] {
		return Boolean, true
	}
	if declWords[text] {
		return KeywordDecl, true
	}
	if keywordWords[text] {
		return Keyword, true
	}
	for _, r := range text {
		if !operatorRunes[r] {
			return "", false
		}
	}
	return Operator, true
}
