// Package lang names the languages the engine understands and maps file
// paths and content onto them.
package lang

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

type ID string

const (
	Plain      ID = "plain"
	Go         ID = "go"
	Rust       ID = "rust"
	Python     ID = "python"
	JavaScript ID = "javascript"
	TypeScript ID = "typescript"
	TSX        ID = "tsx"
	YAML       ID = "yaml"
	TOML       ID = "toml"
	JSON       ID = "json"
	Bash       ID = "bash"
	C          ID = "c"
	CPP        ID = "cpp"
	Zig        ID = "zig"
	HTML       ID = "html"
	XML        ID = "xml"
	CSS        ID = "css"
	SCSS       ID = "scss"
)

var extMap = map[string]ID{
	".go":    Go,
	".rs":    Rust,
	".py":    Python,
	".js":    JavaScript,
	".jsx":   JavaScript,
	".mjs":   JavaScript,
	".cjs":   JavaScript,
	".ts":    TypeScript,
	".tsx":   TSX,
	".yaml":  YAML,
	".yml":   YAML,
	".toml":  TOML,
	".json":  JSON,
	".jsonc": JSON,
	".json5": JSON,
	".sh":    Bash,
	".bash":  Bash,
	".zsh":   Bash,
	".c":     C,
	".h":     C,
	".cpp":   CPP,
	".cc":    CPP,
	".cxx":   CPP,
	".hpp":   CPP,
	".hh":    CPP,
	".zig":   Zig,
	".html":  HTML,
	".htm":   HTML,
	".xml":   XML,
	".svg":   XML,
	".css":   CSS,
	".scss":  SCSS,

	".java":  Plain,
	".kt":    Plain,
	".swift": Plain,
	".rb":    Plain,
	".php":   Plain,
	".lua":   Plain,
	".ini":   Plain,
	".conf":  Plain,
	".md":    Plain,
}

var fileMap = map[string]ID{
	"Makefile":          Plain,
	"Dockerfile":        Plain,
	".bashrc":           Bash,
	".zshrc":            Bash,
	".gitignore":        Plain,
	".editorconfig":     Plain,
	"Cargo.toml":        TOML,
	"package-lock.json": JSON,
	"go.mod":            Go,
	"go.sum":            Plain,
	"build.zig":         Zig,
}

// chromaNameMap translates the lexer names chroma reports back into engine
// IDs, for paths the static tables don't know.
var chromaNameMap = map[string]ID{
	"go":         Go,
	"rust":       Rust,
	"python":     Python,
	"javascript": JavaScript,
	"typescript": TypeScript,
	"yaml":       YAML,
	"toml":       TOML,
	"json":       JSON,
	"bash":       Bash,
	"c":          C,
	"c++":        CPP,
	"zig":        Zig,
	"html":       HTML,
	"xml":        XML,
	"css":        CSS,
	"scss":       SCSS,
}

func Detect(path string) ID {
	base := filepath.Base(path)
	if id, ok := fileMap[base]; ok {
		return id
	}
	ext := strings.ToLower(filepath.Ext(base))
	if id, ok := extMap[ext]; ok {
		return id
	}
	if id := detectByLexer(base); id != Plain {
		return id
	}
	return Plain
}

// DetectSource resolves a language from the path first, then from the
// document's first line (shebang scripts carry no useful extension).
func DetectSource(path string, content string) ID {
	if id := Detect(path); id != Plain {
		return id
	}

	firstLine := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		firstLine = content[:i]
	}
	if !strings.HasPrefix(firstLine, "#!") {
		return Plain
	}
	lower := strings.ToLower(firstLine)
	switch {
	case strings.Contains(lower, "python"):
		return Python
	case strings.Contains(lower, "bash") || strings.Contains(lower, "zsh") || strings.Contains(lower, "sh"):
		return Bash
	case strings.Contains(lower, "node"):
		return JavaScript
	default:
		return Plain
	}
}

func detectByLexer(filename string) ID {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return Plain
	}
	name := strings.ToLower(lexer.Config().Name)
	if id, ok := chromaNameMap[name]; ok {
		return id
	}
	return Plain
}
