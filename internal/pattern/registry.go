package pattern

import "glint/internal/lang"

// Tokenizers are pure and immutable after construction, so one instance
// per language is shared by every session.
var tokenizers = buildTokenizers()

func buildTokenizers() map[lang.ID]*Tokenizer {
	ts := newTypeScriptTokenizer()
	return map[lang.ID]*Tokenizer{
		lang.Go:         newGoTokenizer(),
		lang.JavaScript: newJavaScriptTokenizer(),
		lang.TypeScript: ts,
		lang.TSX:        ts,
		lang.C:          newCTokenizer(),
		lang.CPP:        newCPPTokenizer(),
		lang.Rust:       newRustTokenizer(),
		lang.Zig:        newZigTokenizer(),
		lang.JSON:       newJSONTokenizer(),
		lang.Python:     newPythonTokenizer(),
		lang.Bash:       newBashTokenizer(),
		lang.HTML:       newMarkupTokenizer("html"),
		lang.XML:        newMarkupTokenizer("xml"),
		lang.CSS:        newStylesheetTokenizer("css", false),
		lang.SCSS:       newStylesheetTokenizer("scss", true),
	}
}

// ForLanguage returns the tokenizer for id, or false when the language
// has no line-pattern fallback (YAML and TOML are structural only).
func ForLanguage(id lang.ID) (*Tokenizer, bool) {
	t, ok := tokenizers[id]
	return t, ok
}
