package glint

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DeriveEdit computes the single edit region turning oldContent into
// newContent, in the line/rune-column coordinates UpdateIncremental
// expects. Disjoint changes are folded into one region spanning the first
// through the last difference. Identical contents yield the zero Edit.
func DeriveEdit(oldContent, newContent string) Edit {
	oldText := normalizeNewlines(oldContent)
	newText := normalizeNewlines(newContent)
	if oldText == newText {
		return Edit{}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)

	oldPos, newPos := 0, 0
	start := -1
	oldEnd, newEnd := 0, 0
	for _, d := range diffs {
		n := len(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldPos += n
			newPos += n
		case diffmatchpatch.DiffDelete:
			if start < 0 {
				start = oldPos
			}
			oldPos += n
			oldEnd, newEnd = oldPos, newPos
		case diffmatchpatch.DiffInsert:
			if start < 0 {
				start = oldPos
			}
			newPos += n
			oldEnd, newEnd = oldPos, newPos
		}
	}
	if start < 0 {
		return Edit{}
	}

	startLine, startCol := posToLineCol(oldText, start)
	oldEndLine, oldEndCol := posToLineCol(oldText, oldEnd)
	newEndLine, newEndCol := posToLineCol(newText, newEnd)
	return Edit{
		StartLine:  startLine,
		StartCol:   startCol,
		OldEndLine: oldEndLine,
		OldEndCol:  oldEndCol,
		NewEndLine: newEndLine,
		NewEndCol:  newEndCol,
	}
}

// posToLineCol converts an absolute byte offset to a line number and
// rune column.
func posToLineCol(text string, off int) (int, int) {
	if off < 0 {
		off = 0
	}
	if off > len(text) {
		off = len(text)
	}
	prefix := text[:off]
	line := strings.Count(prefix, "\n")
	lastNL := strings.LastIndexByte(prefix, '\n')
	col := utf8.RuneCountInString(prefix[lastNL+1:])
	return line, col
}
