package structural

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"glint/internal/lang"
	"glint/internal/log"
	"glint/internal/token"
)

// ErrNoGrammar is returned by New for languages without a grammar.
var ErrNoGrammar = errors.New("no structural grammar for language")

// Adapter owns one parse tree for one document. Content passed in must
// already be newline-normalized; every line separator is one byte.
type Adapter struct {
	id      lang.ID
	grammar *sitter.Language
	parser  *sitter.Parser
	tree    *sitter.Tree
	src     []byte
	lines   []string
	starts  []int
}

func New(id lang.ID) (*Adapter, error) {
	g := GrammarFor(id)
	if g == nil {
		return nil, ErrNoGrammar
	}
	p := sitter.NewParser()
	p.SetLanguage(g)
	return &Adapter{id: id, grammar: g, parser: p}, nil
}

func (a *Adapter) ID() lang.ID { return a.id }

// Grammar exposes the grammar pointer so a language switch can detect
// when the tree stays valid (JavaScript to TypeScript and back).
func (a *Adapter) Grammar() *sitter.Language { return a.grammar }

// Retarget renames the adapter's language without touching the tree.
// Only meaningful between languages that share a grammar.
func (a *Adapter) Retarget(id lang.ID) { a.id = id }

func (a *Adapter) HasTree() bool { return a.tree != nil }

// DropTree releases the tree but keeps the parser, so a later Parse can
// rebuild without reconstructing the adapter.
func (a *Adapter) DropTree() {
	if a.tree != nil {
		a.tree.Close()
		a.tree = nil
	}
	a.src = nil
	a.lines = nil
	a.starts = nil
}

// Close releases the tree and parser. The adapter is unusable afterwards.
func (a *Adapter) Close() {
	if a.tree != nil {
		a.tree.Close()
		a.tree = nil
	}
	if a.parser != nil {
		a.parser.Close()
		a.parser = nil
	}
}

// Parse rebuilds the tree from scratch, discarding any previous one.
func (a *Adapter) Parse(content string) error {
	src := []byte(content)
	tree, err := a.parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return err
	}
	if a.tree != nil {
		a.tree.Close()
	}
	a.tree = tree
	a.setContent(content, src)
	return nil
}

// Update applies a structural edit and reparses using the previous tree
// as a hint. Old coordinates address the adapter's current content, new
// coordinates the supplied newContent. Without a base tree, patching is
// undefined, so it falls back to a full parse.
func (a *Adapter) Update(e token.Edit, newContent string) error {
	if a.tree == nil {
		return a.Parse(newContent)
	}

	newSrc := []byte(newContent)
	newLines := strings.Split(newContent, "\n")
	newStarts := lineStarts(newLines)

	startIdx, startPt := offsetFor(a.lines, a.starts, e.StartLine, e.StartCol)
	oldEndIdx, oldEndPt := offsetFor(a.lines, a.starts, e.OldEndLine, e.OldEndCol)
	newEndIdx, newEndPt := offsetFor(newLines, newStarts, e.NewEndLine, e.NewEndCol)

	a.tree.Edit(sitter.EditInput{
		StartIndex:  uint32(startIdx),
		OldEndIndex: uint32(oldEndIdx),
		NewEndIndex: uint32(newEndIdx),
		StartPoint:  startPt,
		OldEndPoint: oldEndPt,
		NewEndPoint: newEndPt,
	})

	tree, err := a.parser.ParseCtx(context.Background(), a.tree, newSrc)
	if err != nil {
		log.ErrorErr(log.CatStructural, "incremental reparse failed, rebuilding", err, "lang", string(a.id))
		tree, err = a.parser.ParseCtx(context.Background(), nil, newSrc)
		if err != nil {
			return err
		}
	}
	a.tree.Close()
	a.tree = tree
	a.setContent(newContent, newSrc)
	return nil
}

// LineTokens walks the tree restricted to nodes intersecting the line and
// returns classified leaf tokens in rune columns.
func (a *Adapter) LineTokens(lineNo int) []token.Token {
	if a.tree == nil || lineNo < 0 || lineNo >= len(a.lines) {
		return nil
	}
	line := a.lines[lineNo]
	lineStart := a.starts[lineNo]
	lineEnd := lineStart + len(line)

	raw := make([]byteSpan, 0, 32)
	a.collect(a.tree.RootNode(), nil, nil, lineStart, lineEnd, &raw)
	if len(raw) == 0 {
		return nil
	}

	out := make([]token.Token, 0, len(raw))
	for _, s := range raw {
		out = append(out, token.Token{
			Start: token.ByteToRune(line, s.start-lineStart),
			End:   token.ByteToRune(line, s.end-lineStart),
			Scope: s.scope,
		})
	}
	return token.Normalize(out, utf8.RuneCountInString(line))
}

type byteSpan struct {
	start int
	end   int
	scope string
}

// collect is a depth-first walk pruned to [lineStart, lineEnd). Only leaf
// nodes become spans, clipped to the line bounds.
func (a *Adapter) collect(n, parent, grand *sitter.Node, lineStart, lineEnd int, out *[]byteSpan) {
	if n == nil {
		return
	}
	start := int(n.StartByte())
	end := int(n.EndByte())
	if end <= lineStart || start >= lineEnd {
		return
	}

	if n.ChildCount() == 0 {
		clippedStart := max(start, lineStart)
		clippedEnd := min(end, lineEnd)
		if clippedStart >= clippedEnd {
			return
		}
		sc, ok := a.classify(n, parent, grand)
		if !ok {
			return
		}
		*out = append(*out, byteSpan{start: clippedStart, end: clippedEnd, scope: sc})
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		a.collect(n.Child(i), n, parent, lineStart, lineEnd, out)
	}
}

func (a *Adapter) nodeText(n *sitter.Node) string {
	start := int(n.StartByte())
	end := int(n.EndByte())
	if start < 0 || end > len(a.src) || start >= end {
		return ""
	}
	return string(a.src[start:end])
}

func (a *Adapter) setContent(content string, src []byte) {
	a.src = src
	a.lines = strings.Split(content, "\n")
	a.starts = lineStarts(a.lines)
}

func lineStarts(lines []string) []int {
	starts := make([]int, len(lines))
	off := 0
	for i, l := range lines {
		starts[i] = off
		off += len(l) + 1
	}
	return starts
}

// offsetFor converts a line/rune-column position to an absolute byte
// offset plus a row/byte-column point, clamping out-of-range coordinates
// to the nearest valid position.
func offsetFor(lines []string, starts []int, row, col int) (int, sitter.Point) {
	if len(lines) == 0 {
		return 0, sitter.Point{}
	}
	if row < 0 {
		row = 0
		col = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
		col = utf8.RuneCountInString(lines[row])
	}
	byteCol := token.RuneColToByte(lines[row], col)
	return starts[row] + byteCol, sitter.Point{Row: uint32(row), Column: uint32(byteCol)}
}
