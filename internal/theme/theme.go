// Package theme resolves chroma styles into a terminal palette keyed by
// the scope vocabulary the engine emits. The engine itself never sees
// colors; this package is the consumer side of the scope contract.
package theme

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"glint/internal/scope"
)

// Palette carries one resolved color per scope concern, as hex strings.
type Palette struct {
	Name         string
	Text         string
	Background   string
	LineNumber   string
	Comment      string
	String       string
	Escape       string
	Number       string
	Constant     string
	Keyword      string
	Declaration  string
	Operator     string
	Preprocessor string
	Annotation   string
	Function     string
	Type         string
	Tag          string
	Attribute    string
	Variable     string
	Parameter    string
	Property     string
	Error        string
}

// Load resolves a chroma style name into a Palette. Unknown names error
// with a short list of suggestions.
func Load(name string) (Palette, error) {
	requested := strings.TrimSpace(name)
	if requested == "" {
		requested = "nord"
	}

	lookup := normalizeThemeName(requested)
	names := styles.Names()
	available := make(map[string]struct{}, len(names))
	for _, n := range names {
		available[n] = struct{}{}
	}
	unknownThemeErr := func() error {
		sort.Strings(names)
		return fmt.Errorf("unknown theme %q. try one of: %s", requested, strings.Join(topThemeHints(names), ", "))
	}
	if _, ok := available[lookup]; !ok {
		return Palette{}, unknownThemeErr()
	}

	style := styles.Get(lookup)
	if style == nil {
		return Palette{}, unknownThemeErr()
	}

	baseBG := pickBackground(style, "#2E3440", chroma.Background, chroma.LineHighlight)
	baseFG := pickForeground(style, "#D8DEE9", chroma.Text, chroma.Background)
	comment := pickForeground(style, adjustTone(baseFG, -60), chroma.Comment)
	str := pickForeground(style, baseFG, chroma.LiteralString)
	number := pickForeground(style, baseFG, chroma.LiteralNumber)
	keyword := pickForeground(style, baseFG, chroma.Keyword)
	fn := pickForeground(style, baseFG, chroma.NameFunction, chroma.Name)

	return Palette{
		Name:         lookup,
		Text:         baseFG,
		Background:   baseBG,
		LineNumber:   pickForeground(style, adjustTone(baseFG, -48), chroma.LineNumbers, chroma.Comment),
		Comment:      comment,
		String:       str,
		Escape:       pickForeground(style, str, chroma.LiteralStringEscape, chroma.LiteralString),
		Number:       number,
		Constant:     pickForeground(style, number, chroma.NameConstant, chroma.LiteralNumber),
		Keyword:      keyword,
		Declaration:  pickForeground(style, keyword, chroma.KeywordDeclaration, chroma.Keyword),
		Operator:     pickForeground(style, baseFG, chroma.Operator, chroma.Punctuation),
		Preprocessor: pickForeground(style, keyword, chroma.CommentPreproc, chroma.Keyword),
		Annotation:   pickForeground(style, keyword, chroma.NameDecorator, chroma.NameAttribute),
		Function:     fn,
		Type:         pickForeground(style, baseFG, chroma.KeywordType, chroma.NameClass),
		Tag:          pickForeground(style, keyword, chroma.NameTag, chroma.Keyword),
		Attribute:    pickForeground(style, fn, chroma.NameAttribute, chroma.NameOther),
		Variable:     pickForeground(style, baseFG, chroma.NameVariable, chroma.Name),
		Parameter:    pickForeground(style, baseFG, chroma.NameVariable, chroma.Name),
		Property:     pickForeground(style, fn, chroma.NameProperty, chroma.NameAttribute),
		Error:        pickForeground(style, "#BF616A", chroma.Error),
	}, nil
}

// Default returns the nord palette, falling back to fixed values should
// the style registry ever lack it.
func Default() Palette {
	if p, err := Load("nord"); err == nil {
		return p
	}
	return Palette{
		Name:         "fallback",
		Text:         "#D8DEE9",
		Background:   "#2E3440",
		LineNumber:   "#4C566A",
		Comment:      "#4C566A",
		String:       "#A3BE8C",
		Escape:       "#EBCB8B",
		Number:       "#B48EAD",
		Constant:     "#B48EAD",
		Keyword:      "#81A1C1",
		Declaration:  "#81A1C1",
		Operator:     "#D8DEE9",
		Preprocessor: "#5E81AC",
		Annotation:   "#D08770",
		Function:     "#88C0D0",
		Type:         "#8FBCBB",
		Tag:          "#81A1C1",
		Attribute:    "#8FBCBB",
		Variable:     "#D8DEE9",
		Parameter:    "#D8DEE9",
		Property:     "#88C0D0",
		Error:        "#BF616A",
	}
}

// ColorFor maps a scope string to the palette color, exact matches first,
// then dotted-prefix families. Unmatched scopes get the default text
// color.
func (p Palette) ColorFor(sc string) string {
	switch sc {
	case scope.CharEscape, scope.Entity:
		return p.Escape
	case scope.Numeric, scope.Boolean:
		return p.Number
	case scope.ConstantOther:
		return p.Constant
	case scope.KeywordDecl:
		return p.Declaration
	case scope.Operator:
		return p.Operator
	case scope.Preprocessor:
		return p.Preprocessor
	case scope.Annotation:
		return p.Annotation
	case scope.FunctionName:
		return p.Function
	case scope.TypeName:
		return p.Type
	case scope.Tag:
		return p.Tag
	case scope.AttributeName:
		return p.Attribute
	case scope.Parameter:
		return p.Parameter
	case scope.PropertyName:
		return p.Property
	}
	switch {
	case strings.HasPrefix(sc, "comment"):
		return p.Comment
	case strings.HasPrefix(sc, "string"):
		return p.String
	case strings.HasPrefix(sc, "keyword"):
		return p.Keyword
	case strings.HasPrefix(sc, "variable"):
		return p.Variable
	case strings.HasPrefix(sc, "invalid"):
		return p.Error
	default:
		return p.Text
	}
}

func normalizeThemeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "solarized":
		return "solarized-dark"
	case "one-dark":
		return "onedark"
	default:
		return n
	}
}

func pickForeground(style *chroma.Style, fallback string, types ...chroma.TokenType) string {
	for _, tt := range types {
		entry := style.Get(tt)
		if entry.Colour.IsSet() {
			return entry.Colour.String()
		}
	}
	return fallback
}

func pickBackground(style *chroma.Style, fallback string, types ...chroma.TokenType) string {
	for _, tt := range types {
		entry := style.Get(tt)
		if entry.Background.IsSet() {
			return entry.Background.String()
		}
	}
	return fallback
}

func topThemeHints(all []string) []string {
	wanted := []string{"nord", "dracula", "monokai", "github", "github-dark", "solarized-dark", "solarized-light", "gruvbox", "onedark"}
	set := map[string]bool{}
	for _, n := range all {
		set[n] = true
	}
	out := make([]string, 0, len(wanted))
	for _, name := range wanted {
		if set[name] {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		limit := min(8, len(all))
		return all[:limit]
	}
	return out
}

func adjustTone(hex string, delta int) string {
	r, g, b, ok := parseHexRGB(hex)
	if !ok {
		return hex
	}
	r = clamp8(r + delta)
	g = clamp8(g + delta)
	b = clamp8(b + delta)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func parseHexRGB(hex string) (int, int, int, bool) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	r := int((v >> 16) & 0xFF)
	g := int((v >> 8) & 0xFF)
	b := int(v & 0xFF)
	return r, g, b, true
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
