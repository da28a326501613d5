package glint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glint/internal/scope"
)

// newPatternSession forces the line-pattern strategy by making any
// non-empty document count as oversized.
func newPatternSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(WithMaxStructuralBytes(1))
	t.Cleanup(s.Close)
	return s
}

func newStructuralSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	t.Cleanup(s.Close)
	return s
}

func TestSession_WorkedExample(t *testing.T) {
	t.Parallel()

	variants := map[string]func(*testing.T) *Session{
		"structural": newStructuralSession,
		"pattern":    newPatternSession,
	}

	for name, mk := range variants {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := mk(t)
			require.True(t, s.SetLanguage("javascript"))
			s.Parse("// a\nlet x = 1;\n")

			require.Equal(t, []Token{{Start: 0, End: 4, Scope: scope.CommentLine}}, s.HighlightLine(0))

			require.Equal(t, []Token{
				{Start: 0, End: 3, Scope: scope.KeywordDecl},
				{Start: 4, End: 5, Scope: scope.Variable},
				{Start: 6, End: 7, Scope: scope.Operator},
				{Start: 8, End: 9, Scope: scope.Numeric},
				{Start: 9, End: 10, Scope: scope.Operator},
			}, s.HighlightLine(1))

			require.Empty(t, s.HighlightLine(2), "trailing empty line")
			require.Empty(t, s.HighlightLine(99), "past-end lines yield nothing")
			require.Empty(t, s.HighlightLine(-1))
		})
	}
}

func TestSession_SetLanguage(t *testing.T) {
	t.Parallel()

	t.Run("unknown clears binding", func(t *testing.T) {
		t.Parallel()
		s := newStructuralSession(t)
		require.True(t, s.SetLanguage("go"))
		require.False(t, s.SetLanguage("klingon"))
		require.Equal(t, "", s.Language())
		require.Equal(t, Unsupported, s.Strategy())
	})

	t.Run("normalizes case and spacing", func(t *testing.T) {
		t.Parallel()
		s := newStructuralSession(t)
		require.True(t, s.SetLanguage("  Go "))
		require.Equal(t, "go", s.Language())
	})

	t.Run("empty and plain are unsupported", func(t *testing.T) {
		t.Parallel()
		s := newStructuralSession(t)
		require.False(t, s.SetLanguage(""))
		require.False(t, s.SetLanguage("plain"))
	})

	t.Run("same language is a no-op", func(t *testing.T) {
		t.Parallel()
		s := newStructuralSession(t)
		require.True(t, s.SetLanguage("go"))
		s.Parse("var x = 1\n")
		first := s.HighlightLine(0)
		require.True(t, s.SetLanguage("go"))
		require.Equal(t, first, s.HighlightLine(0))
	})

	t.Run("strategy per language", func(t *testing.T) {
		t.Parallel()
		s := newStructuralSession(t)

		require.True(t, s.SetLanguage("go"))
		require.Equal(t, Structural, s.Strategy())

		require.True(t, s.SetLanguage("html"))
		require.Equal(t, Pattern, s.Strategy(), "markup has no grammar")

		require.True(t, s.SetLanguage("yaml"))
		require.Equal(t, Structural, s.Strategy(), "yaml is structural only")
	})
}

func TestSession_AnyCallOrder(t *testing.T) {
	t.Parallel()

	t.Run("highlight before parse", func(t *testing.T) {
		t.Parallel()
		s := newStructuralSession(t)
		require.True(t, s.SetLanguage("go"))
		require.Empty(t, s.HighlightLine(0), "no content yet")
	})

	t.Run("parse before set language", func(t *testing.T) {
		t.Parallel()
		s := newStructuralSession(t)
		s.Parse("let x = 1;\n")
		require.Empty(t, s.HighlightLine(0), "no language yet")

		require.True(t, s.SetLanguage("javascript"))
		got := s.HighlightLine(0)
		assert.Contains(t, got, Token{Start: 0, End: 3, Scope: scope.KeywordDecl},
			"the deferred parse runs on first highlight")
	})
}

func TestSession_UpdateIncremental_SameLineCount(t *testing.T) {
	t.Parallel()

	for name, mk := range map[string]func(*testing.T) *Session{
		"structural": newStructuralSession,
		"pattern":    newPatternSession,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := mk(t)
			require.True(t, s.SetLanguage("javascript"))
			s.Parse("let a = 1;\nlet b = 2;\nlet c = 3;\n")

			line0 := s.HighlightLine(0)
			s.HighlightLine(1)
			line2 := s.HighlightLine(2)

			// let b = 2;  ->  let b = 42;
			edit := Edit{StartLine: 1, StartCol: 8, OldEndLine: 1, OldEndCol: 9, NewEndLine: 1, NewEndCol: 10}
			s.UpdateIncremental(edit, "let a = 1;\nlet b = 42;\nlet c = 3;\n")

			assert.Contains(t, s.HighlightLine(1), Token{Start: 8, End: 10, Scope: scope.Numeric})
			require.Equal(t, line0, s.HighlightLine(0), "lines before the edit keep their tokens")
			require.Equal(t, line2, s.HighlightLine(2), "lines after the edit keep their tokens")
		})
	}
}

func TestSession_UpdateIncremental_InsertLine(t *testing.T) {
	t.Parallel()

	for name, mk := range map[string]func(*testing.T) *Session{
		"structural": newStructuralSession,
		"pattern":    newPatternSession,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := mk(t)
			require.True(t, s.SetLanguage("javascript"))
			s.Parse("let a = 1;\nlet b = 2;\n")

			line0 := s.HighlightLine(0)
			s.HighlightLine(1)

			edit := Edit{StartLine: 1, StartCol: 0, OldEndLine: 1, OldEndCol: 0, NewEndLine: 2, NewEndCol: 0}
			s.UpdateIncremental(edit, "let a = 1;\nlet c = 3;\nlet b = 2;\n")

			require.Equal(t, 4, s.LineCount())
			require.Equal(t, "let c = 3;", s.Line(1))
			require.Equal(t, line0, s.HighlightLine(0))
			assert.Contains(t, s.HighlightLine(1), Token{Start: 8, End: 9, Scope: scope.Numeric})
			assert.Contains(t, s.HighlightLine(2), Token{Start: 8, End: 9, Scope: scope.Numeric},
				"the shifted line still highlights as before")
		})
	}
}

func TestSession_UpdateIncremental_CommentStateRipple(t *testing.T) {
	t.Parallel()

	s := newPatternSession(t)
	require.True(t, s.SetLanguage("go"))
	s.Parse("x := 1\ny := 2\n")

	require.NotEmpty(t, s.HighlightLine(1))

	// Opening a block comment on line 0 swallows every following line
	// even though the edit never touched them.
	edit := Edit{StartLine: 0, StartCol: 6, OldEndLine: 0, OldEndCol: 6, NewEndLine: 0, NewEndCol: 9}
	s.UpdateIncremental(edit, "x := 1 /*\ny := 2\n")

	require.Equal(t, []Token{{Start: 0, End: 6, Scope: scope.CommentBlock}}, s.HighlightLine(1))
}

func TestSession_OversizeDegrade(t *testing.T) {
	t.Parallel()

	t.Run("falls back to pattern", func(t *testing.T) {
		t.Parallel()
		s := NewSession(WithMaxStructuralBytes(8))
		t.Cleanup(s.Close)

		require.True(t, s.SetLanguage("javascript"))
		s.Parse("let x = 1;\n")

		require.Equal(t, Structural, s.Strategy())
		require.Equal(t, Pattern, s.Active())
		assert.Contains(t, s.HighlightLine(0), Token{Start: 0, End: 3, Scope: scope.KeywordDecl})
	})

	t.Run("no fallback family goes dark", func(t *testing.T) {
		t.Parallel()
		s := NewSession(WithMaxStructuralBytes(4))
		t.Cleanup(s.Close)

		require.True(t, s.SetLanguage("yaml"))
		s.Parse("name: x\n")

		require.Equal(t, Structural, s.Strategy())
		require.Equal(t, Unsupported, s.Active())
		require.Empty(t, s.HighlightLine(0))
	})
}

func TestSession_StrategyFlipsAcrossThreshold(t *testing.T) {
	t.Parallel()

	s := NewSession(WithMaxStructuralBytes(40))
	t.Cleanup(s.Close)
	require.True(t, s.SetLanguage("javascript"))

	small := "let x = 1;\n"
	s.Parse(small)
	require.Equal(t, Structural, s.Active())

	grown := "let x = 1;\nlet y = \"this line breaks the size cap\";\n"
	edit := Edit{StartLine: 1, StartCol: 0, OldEndLine: 1, OldEndCol: 0, NewEndLine: 2, NewEndCol: 0}
	s.UpdateIncremental(edit, grown)
	require.Equal(t, Pattern, s.Active())
	assert.Contains(t, s.HighlightLine(1), Token{Start: 0, End: 3, Scope: scope.KeywordDecl})

	shrunk := Edit{StartLine: 1, StartCol: 0, OldEndLine: 2, OldEndCol: 0, NewEndLine: 1, NewEndCol: 0}
	s.UpdateIncremental(shrunk, small)
	require.Equal(t, Structural, s.Active())
	assert.Contains(t, s.HighlightLine(0), Token{Start: 0, End: 3, Scope: scope.KeywordDecl})
}

func TestSession_ClearCache(t *testing.T) {
	t.Parallel()

	s := newStructuralSession(t)
	require.True(t, s.SetLanguage("go"))
	s.Parse("var x = 1\n")

	first := s.HighlightLine(0)
	s.ClearCache()
	require.Equal(t, first, s.HighlightLine(0), "recomputation matches the cached result")
}

func TestSession_JSToTSSwitch(t *testing.T) {
	t.Parallel()

	s := newStructuralSession(t)
	require.True(t, s.SetLanguage("javascript"))
	s.Parse("let x = 1;\n")
	require.NotEmpty(t, s.HighlightLine(0))

	require.True(t, s.SetLanguage("typescript"))
	require.Equal(t, "typescript", s.Language())
	assert.Contains(t, s.HighlightLine(0), Token{Start: 0, End: 3, Scope: scope.KeywordDecl},
		"the shared grammar keeps serving tokens across the switch")
}

func TestSession_CRLFNormalized(t *testing.T) {
	t.Parallel()

	s := newStructuralSession(t)
	require.True(t, s.SetLanguage("go"))
	s.Parse("var x = 1\r\nvar y = 2\r\n")

	require.Equal(t, 3, s.LineCount())
	require.Equal(t, "var x = 1", s.Line(0))
	require.False(t, strings.Contains(s.Content(), "\r"))
}

func TestSession_CloseIsSafe(t *testing.T) {
	t.Parallel()

	s := NewSession()
	require.True(t, s.SetLanguage("go"))
	s.Parse("var x = 1\n")
	s.Close()
	s.Close()
}
