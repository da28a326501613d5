// Package structural wraps the incremental parse-tree engine behind the
// line-token contract shared with the pattern strategy. An Adapter owns
// one tree for one document; edits are applied structurally and reparses
// reuse the previous tree.
package structural

import (
	sitter "github.com/smacker/go-tree-sitter"
	bashlang "github.com/smacker/go-tree-sitter/bash"
	clang "github.com/smacker/go-tree-sitter/c"
	cpplang "github.com/smacker/go-tree-sitter/cpp"
	golang "github.com/smacker/go-tree-sitter/golang"
	python "github.com/smacker/go-tree-sitter/python"
	rust "github.com/smacker/go-tree-sitter/rust"
	toml "github.com/smacker/go-tree-sitter/toml"
	tsxlang "github.com/smacker/go-tree-sitter/typescript/tsx"
	tslang "github.com/smacker/go-tree-sitter/typescript/typescript"
	yaml "github.com/smacker/go-tree-sitter/yaml"
	tszig "github.com/tree-sitter-grammars/tree-sitter-zig/bindings/go"
	tsjson "github.com/tree-sitter/tree-sitter-json/bindings/go"

	"glint/internal/lang"
)

// Grammar pointers must be stable: a language switch keeps the existing
// tree exactly when the new language resolves to the identical grammar
// (JavaScript and TypeScript share one), so the registry is built once.
var (
	tsGrammar = tslang.GetLanguage()

	grammars = map[lang.ID]*sitter.Language{
		lang.Go:         golang.GetLanguage(),
		lang.Rust:       rust.GetLanguage(),
		lang.Python:     python.GetLanguage(),
		lang.JavaScript: tsGrammar,
		lang.TypeScript: tsGrammar,
		lang.TSX:        tsxlang.GetLanguage(),
		lang.YAML:       yaml.GetLanguage(),
		lang.TOML:       toml.GetLanguage(),
		lang.JSON:       sitter.NewLanguage(tsjson.Language()),
		lang.Bash:       bashlang.GetLanguage(),
		lang.C:          clang.GetLanguage(),
		lang.CPP:        cpplang.GetLanguage(),
		lang.Zig:        sitter.NewLanguage(tszig.Language()),
	}
)

// GrammarFor returns the grammar for id, or nil. Markup and stylesheet
// languages are deliberately absent: their grammars are unreliable for
// fragmentary editor content, so they always take the pattern strategy.
func GrammarFor(id lang.ID) *sitter.Language {
	return grammars[id]
}

// Supported reports whether id can be parsed structurally.
func Supported(id lang.ID) bool {
	return grammars[id] != nil
}
