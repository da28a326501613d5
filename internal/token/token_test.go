package token

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{""}, SplitLines(""))
	require.Equal(t, []string{"a", "b"}, SplitLines("a\nb"))
	require.Equal(t, []string{"a", "b", ""}, SplitLines("a\nb\n"))
	require.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb"), "CRLF normalizes to LF")
}

func TestRuneColToByte(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, RuneColToByte("hello", 0))
	require.Equal(t, 3, RuneColToByte("hello", 3))
	require.Equal(t, 5, RuneColToByte("hello", 99), "past-end clamps to byte length")
	require.Equal(t, 0, RuneColToByte("hello", -1))

	// é is two bytes; rune column 2 lands after it.
	require.Equal(t, 1, RuneColToByte("héllo", 1))
	require.Equal(t, 3, RuneColToByte("héllo", 2))
}

func TestByteToRune(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, ByteToRune("hello", 0))
	require.Equal(t, 3, ByteToRune("hello", 3))
	require.Equal(t, 5, ByteToRune("hello", 99))
	require.Equal(t, 2, ByteToRune("héllo", 3))
}

func TestSortIsStable(t *testing.T) {
	t.Parallel()

	toks := []Token{
		{Start: 4, End: 6, Scope: "b"},
		{Start: 0, End: 2, Scope: "first"},
		{Start: 4, End: 8, Scope: "a"},
	}
	Sort(toks)

	require.Equal(t, "first", toks[0].Scope)
	require.Equal(t, "b", toks[1].Scope, "equal starts keep acceptance order")
	require.Equal(t, "a", toks[2].Scope)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("clips and drops", func(t *testing.T) {
		t.Parallel()
		got := Normalize([]Token{
			{Start: -2, End: 3, Scope: "keyword"},
			{Start: 5, End: 20, Scope: "string"},
			{Start: 4, End: 4, Scope: "empty"},
			{Start: 6, End: 7, Scope: ""},
		}, 10)
		require.Equal(t, []Token{
			{Start: 0, End: 3, Scope: "keyword"},
			{Start: 5, End: 10, Scope: "string"},
		}, got)
	})

	t.Run("merges touching same scope", func(t *testing.T) {
		t.Parallel()
		got := Normalize([]Token{
			{Start: 0, End: 3, Scope: "comment.line"},
			{Start: 3, End: 7, Scope: "comment.line"},
		}, 10)
		require.Equal(t, []Token{{Start: 0, End: 7, Scope: "comment.line"}}, got)
	})

	t.Run("keeps overlapping tokens", func(t *testing.T) {
		t.Parallel()
		got := Normalize([]Token{
			{Start: 0, End: 8, Scope: "string.quoted"},
			{Start: 2, End: 5, Scope: "constant.character.escape"},
		}, 10)
		require.Len(t, got, 2, "overlaps are preserved, later layers win per cell downstream")
	})

	t.Run("empty line yields nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, Normalize([]Token{{Start: 0, End: 1, Scope: "x"}}, 0))
	})
}

func TestCovers(t *testing.T) {
	t.Parallel()

	toks := []Token{{Start: 2, End: 5, Scope: "string"}}
	require.False(t, Covers(toks, 1))
	require.True(t, Covers(toks, 2))
	require.True(t, Covers(toks, 4))
	require.False(t, Covers(toks, 5), "end is exclusive")
}

func TestProperty_ColumnConversionRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		line := rapid.String().Draw(rt, "line")
		runeLen := utf8.RuneCountInString(line)
		col := rapid.IntRange(0, runeLen).Draw(rt, "col")

		off := RuneColToByte(line, col)
		require.Equal(rt, col, ByteToRune(line, off))
	})
}

func TestProperty_NormalizeSortedAndBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		runeLen := rapid.IntRange(1, 60).Draw(rt, "runeLen")
		n := rapid.IntRange(0, 12).Draw(rt, "tokens")

		toks := make([]Token, 0, n)
		for i := 0; i < n; i++ {
			start := rapid.IntRange(-5, runeLen+5).Draw(rt, "start")
			end := rapid.IntRange(-5, runeLen+5).Draw(rt, "end")
			toks = append(toks, Token{Start: start, End: end, Scope: "scope"})
		}

		got := Normalize(toks, runeLen)
		for i, tok := range got {
			require.Less(rt, tok.Start, tok.End, "no empty tokens")
			require.GreaterOrEqual(rt, tok.Start, 0)
			require.LessOrEqual(rt, tok.End, runeLen)
			if i > 0 {
				require.LessOrEqual(rt, got[i-1].Start, tok.Start, "sorted by start")
			}
		}
	})
}
