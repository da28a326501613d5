package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"glint/internal/lang"
)

func rulesFor(t *testing.T, id lang.ID) Rules {
	t.Helper()
	tok, ok := ForLanguage(id)
	require.True(t, ok, "no tokenizer for %s", id)
	return tok.Rules
}

func TestScanStates_FirstLineAlwaysTopLevel(t *testing.T) {
	t.Parallel()

	states := ScanStates([]string{"/* open", "inside"}, rulesFor(t, lang.Go), 0)
	require.Equal(t, LineState{}, states[0])
}

func TestScanStates_BlockComment(t *testing.T) {
	t.Parallel()

	lines := []string{
		"x := 1 /* open",
		"inside",
		"done */ y := 2",
		"after",
	}
	states := ScanStates(lines, rulesFor(t, lang.Go), 0)

	require.Equal(t, []LineState{
		{},
		{Kind: StateInComment},
		{Kind: StateInComment},
		{},
	}, states)
}

func TestScanStates_GoRawString(t *testing.T) {
	t.Parallel()

	lines := []string{
		"q := `raw start",
		"middle",
		"end` + 1",
		"after",
	}
	states := ScanStates(lines, rulesFor(t, lang.Go), 0)

	carried := LineState{Kind: StateInString, Delim: "`"}
	require.Equal(t, []LineState{{}, carried, carried, {}}, states)
}

func TestScanStates_LineCommentStopsScan(t *testing.T) {
	t.Parallel()

	lines := []string{"// /* never opens", "next"}
	states := ScanStates(lines, rulesFor(t, lang.Go), 0)

	require.Equal(t, LineState{}, states[1])
}

func TestScanStates_UnterminatedSingleLineStringDoesNotCarry(t *testing.T) {
	t.Parallel()

	lines := []string{`s := "oops`, "next"}
	states := ScanStates(lines, rulesFor(t, lang.Go), 0)

	require.Equal(t, LineState{}, states[1], "Go double-quoted strings are single line")
}

func TestScanStates_EscapedDelimiterKeepsStringOpen(t *testing.T) {
	t.Parallel()

	// Rust double-quoted strings span lines; \" must not close one.
	lines := []string{
		`let s = "a\"b`,
		`still \" open`,
		`done"`,
		"after",
	}
	states := ScanStates(lines, rulesFor(t, lang.Rust), 0)

	carried := LineState{Kind: StateInString, Delim: `"`, Esc: '\\'}
	require.Equal(t, []LineState{{}, carried, carried, {}}, states)
}

func TestScanStates_PythonTripleQuote(t *testing.T) {
	t.Parallel()

	lines := []string{
		`doc = """start`,
		"middle",
		`end"""`,
		"after",
	}
	states := ScanStates(lines, rulesFor(t, lang.Python), 0)

	carried := LineState{Kind: StateInString, Delim: `"""`, Esc: '\\'}
	require.Equal(t, []LineState{{}, carried, carried, {}}, states)
}

func TestScanStates_MarkupComment(t *testing.T) {
	t.Parallel()

	lines := []string{
		"<p>text <!-- note",
		"still hidden",
		"--> <b>bold</b>",
		"after",
	}
	states := ScanStates(lines, rulesFor(t, lang.HTML), 0)

	require.Equal(t, []LineState{
		{},
		{Kind: StateInComment},
		{Kind: StateInComment},
		{},
	}, states)
}

func TestScanStates_BashSingleQuote(t *testing.T) {
	t.Parallel()

	lines := []string{
		"echo 'multi",
		"line'",
		"after",
	}
	states := ScanStates(lines, rulesFor(t, lang.Bash), 0)

	require.Equal(t, []LineState{
		{},
		{Kind: StateInString, Delim: "'"},
		{},
	}, states)
}

func TestScanStates_MaxLinesCap(t *testing.T) {
	t.Parallel()

	lines := []string{"/* open", "a", "b", "c", "d"}
	states := ScanStates(lines, rulesFor(t, lang.Go), 2)

	require.Len(t, states, len(lines))
	require.Equal(t, LineState{}, states[0])
	require.Equal(t, LineState{Kind: StateInComment}, states[1])
	for i := 2; i < len(states); i++ {
		require.Equal(t, LineState{}, states[i], "line %d beyond cap keeps zero state", i)
	}
}
