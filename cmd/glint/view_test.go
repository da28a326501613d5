package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glint"
	"glint/internal/lang"
	"glint/internal/theme"
)

func init() {
	// Force color output in tests (lipgloss disables colors when no TTY).
	lipgloss.SetColorProfile(termenv.ANSI256)

	// Commands read these through setup(); tests construct models directly.
	palette = theme.Default()
	cfg = appConfig{
		Theme:              "nord",
		WatchDebounceMS:    200,
		MaxScanLines:       100_000,
		MaxStructuralBytes: 4 << 20,
	}
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestViewModel_ShowsHighlightedContent(t *testing.T) {
	t.Parallel()

	m := newViewModel("example.js", "// a\nlet x = 1;\n")
	t.Cleanup(m.session.Close)

	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("let")) &&
			bytes.Contains(out, []byte("example.js")) &&
			bytes.Contains(out, []byte("javascript · structural"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestViewModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := newViewModel("example.go", "package main\n")
	t.Cleanup(m.session.Close)

	assert.Contains(t, m.View(), "loading", "view renders a placeholder before the first WindowSizeMsg")
}

func TestViewModel_ReloadOnFileChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.go")
	require.NoError(t, os.WriteFile(path, []byte("// first version\n"), 0o644))

	m := newViewModel(path, "// first version\n")
	t.Cleanup(m.session.Close)

	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("first version"))
	})

	require.NoError(t, os.WriteFile(path, []byte("// second version\n"), 0o644))
	tm.Send(fileChangedMsg{})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("second version"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestViewModel_QuitOnCtrlC(t *testing.T) {
	t.Parallel()

	m := newViewModel("example.go", "package main\n")
	t.Cleanup(m.session.Close)

	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestRenderFile(t *testing.T) {
	t.Parallel()

	out := renderFile("main.go", "package main\n\nvar n = 42\n", true)
	plain := stripANSI(out)

	assert.Contains(t, plain, "  1 package main")
	assert.Contains(t, plain, "  3 var n = 42")

	noGutter := stripANSI(renderFile("main.go", "package main\n", false))
	assert.Equal(t, "package main\n", noGutter)
}

func TestRenderFile_UnknownLanguageStaysPlain(t *testing.T) {
	t.Parallel()

	out := renderFile("notes.txt", "just some prose\n", false)
	assert.Equal(t, "just some prose\n", stripANSI(out))
}

func TestGutterWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, gutterWidth(0))
	assert.Equal(t, 3, gutterWidth(999))
	assert.Equal(t, 4, gutterWidth(1000))
}

func TestStyleKey(t *testing.T) {
	t.Parallel()

	toks := []glint.Token{{Start: 0, End: 3, Scope: "keyword"}}

	assert.Equal(t, styleKey("let", toks), styleKey("let", toks))
	assert.NotEqual(t, styleKey("let", toks), styleKey("var", toks))
	assert.NotEqual(t, styleKey("let", toks), styleKey("let", nil))
	assert.NotEqual(t, styleKey("let", toks), styleKey("let", []glint.Token{{Start: 0, End: 3, Scope: "variable"}}))
}

func TestDetectLanguage_OverridesWin(t *testing.T) {
	saved := overrides
	t.Cleanup(func() { overrides = saved })

	overrides = lang.Overrides{Extensions: map[string]string{".weird": "go"}}

	assert.Equal(t, "go", detectLanguage("conf.weird", ""))
	assert.Equal(t, "javascript", detectLanguage("app.js", ""))
	assert.Equal(t, "", detectLanguage("readme.txt", ""))
}
