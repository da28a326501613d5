package glint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"glint/internal/scope"
)

func TestDeriveEdit_Identical(t *testing.T) {
	t.Parallel()

	require.Equal(t, Edit{}, DeriveEdit("let x = 1;\n", "let x = 1;\n"))
	require.Equal(t, Edit{}, DeriveEdit("a\r\nb", "a\nb"), "newline style is not an edit")
}

func TestDeriveEdit_InsertWithinLine(t *testing.T) {
	t.Parallel()

	got := DeriveEdit("let x = 1;\n", "let x = 41;\n")

	require.Equal(t, 0, got.StartLine)
	require.Equal(t, 0, got.OldEndLine)
	require.Equal(t, 0, got.NewEndLine)
	require.LessOrEqual(t, got.StartCol, 8)
	require.LessOrEqual(t, got.OldEndCol, 9)
	require.Equal(t, got.OldEndCol+1, got.NewEndCol, "one rune was inserted")
}

func TestDeriveEdit_AppendLine(t *testing.T) {
	t.Parallel()

	got := DeriveEdit("a\nb\n", "a\nb\nc\n")

	require.Equal(t, 2, got.StartLine)
	require.Equal(t, 2, got.OldEndLine)
	require.Equal(t, 3, got.NewEndLine)
	require.Equal(t, 0, got.NewEndCol)
}

func TestDeriveEdit_DeleteLines(t *testing.T) {
	t.Parallel()

	got := DeriveEdit("a\nb\nc\nd\n", "a\nd\n")

	require.Equal(t, 1, got.StartLine)
	require.Equal(t, 3, got.OldEndLine)
	require.Equal(t, 1, got.NewEndLine)
}

func TestDeriveEdit_DisjointChangesFold(t *testing.T) {
	t.Parallel()

	// Changes on lines 0 and 2 fold into one region spanning both.
	got := DeriveEdit("aa\nbb\ncc\n", "ax\nbb\ncx\n")

	require.Equal(t, 0, got.StartLine)
	require.Equal(t, 2, got.OldEndLine)
	require.Equal(t, 2, got.NewEndLine)
}

func TestDeriveEdit_DrivesUpdateIncremental(t *testing.T) {
	t.Parallel()

	for name, mk := range map[string]func(*testing.T) *Session{
		"structural": newStructuralSession,
		"pattern":    newPatternSession,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			oldContent := "let a = 1;\nlet b = 2;\n"
			newContent := "let a = 1;\nlet b = 42;\nlet c = 3;\n"

			s := mk(t)
			require.True(t, s.SetLanguage("javascript"))
			s.Parse(oldContent)
			s.HighlightLine(0)
			s.HighlightLine(1)

			s.UpdateIncremental(DeriveEdit(oldContent, newContent), newContent)

			require.Equal(t, newContent, s.Content())
			require.Contains(t, s.HighlightLine(1), Token{Start: 8, End: 10, Scope: scope.Numeric})
			require.Contains(t, s.HighlightLine(2), Token{Start: 8, End: 9, Scope: scope.Numeric})
			require.Contains(t, s.HighlightLine(0), Token{Start: 0, End: 3, Scope: scope.KeywordDecl})
		})
	}
}
