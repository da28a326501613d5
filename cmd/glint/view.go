package main

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	gocache "github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"

	"glint"
	"glint/internal/log"
	"glint/internal/render"
	"glint/internal/watcher"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "View a file with live re-highlighting on change",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

type fileChangedMsg struct{}

// waitForChange blocks on the watcher channel and resurfaces as a message.
// Re-issued after every reload.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

type viewModel struct {
	path    string
	session *glint.Session

	watch   *watcher.Watcher
	changes <-chan struct{}

	// rendered memoizes styled line strings keyed by a hash of the line
	// text, its tokens, and the theme. Content-addressed, so edits can
	// never serve a stale entry and repeated lines share one.
	rendered *gocache.Cache

	viewport viewport.Model
	gutterW  int
	width    int
	height   int
	ready    bool
	status   string
}

func newViewModel(path, content string) viewModel {
	s := glint.NewSession(sessionOptions()...)
	id := detectLanguage(path, content)
	s.SetLanguage(id)
	s.Parse(content)

	return viewModel{
		path:     path,
		session:  s,
		rendered: gocache.New(5*time.Minute, 10*time.Minute),
		gutterW:  gutterWidth(s.LineCount()),
		status:   "watching " + path,
	}
}

func (m viewModel) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			// Drop every cached token and styled line, then rebuild.
			m.session.ClearCache()
			m.rendered.Flush()
			m.viewport.SetContent(m.renderDoc())
			m.status = "re-highlighted"
			return m, nil
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := max(msg.Height-2, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
			m.viewport.SetContent(m.renderDoc())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
		return m, nil

	case fileChangedMsg:
		m.reload()
		return m, waitForChange(m.changes)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m *viewModel) reload() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		log.ErrorErr(log.CatWatch, "reload failed", err, "path", m.path)
		return
	}

	old := m.session.Content()
	next := string(data)
	edit := glint.DeriveEdit(old, next)
	m.session.UpdateIncremental(edit, next)
	m.gutterW = gutterWidth(m.session.LineCount())

	m.viewport.SetContent(m.renderDoc())
	m.status = "reloaded " + time.Now().Format("15:04:05")
	log.Debug(log.CatWatch, "file reloaded",
		"path", m.path,
		"lines", m.session.LineCount(),
		"start", edit.StartLine,
		"old_end", edit.OldEndLine,
		"new_end", edit.NewEndLine)
}

func (m viewModel) renderDoc() string {
	n := m.session.LineCount()
	var b strings.Builder
	for i := 0; i < n; i++ {
		text := m.session.Line(i)
		toks := m.session.HighlightLine(i)

		key := styleKey(text, toks)
		styled, ok := cachedString(m.rendered, key)
		if !ok {
			styled = render.Line(text, toks, palette)
			m.rendered.Set(key, styled, gocache.DefaultExpiration)
		}

		b.WriteString(render.Gutter(i+1, m.gutterW, palette))
		b.WriteString(styled)
		if i < n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m viewModel) headerView() string {
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Function)).Render(m.path)
	langID := m.session.Language()
	if langID == "" {
		langID = "plain"
	}
	meta := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Comment)).
		Render(fmt.Sprintf("%s · %s · %s", langID, m.session.Active(), palette.Name))
	return render.Truncate(name+" "+meta, max(m.width, 1))
}

func (m viewModel) footerView() string {
	hints := "q quit · r re-highlight · g/G top/bottom"
	left := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Comment)).Render(hints)
	right := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.LineNumber)).Render(m.status)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return render.Truncate(left, max(m.width, 1))
	}
	return left + strings.Repeat(" ", gap) + right
}

// styleKey fingerprints a line's text, tokens, and theme. Two lines that
// hash equal render equal.
func styleKey(text string, toks []glint.Token) string {
	h := fnv.New64a()
	_, _ = io.WriteString(h, palette.Name)
	_, _ = io.WriteString(h, "\x00")
	_, _ = io.WriteString(h, text)
	for _, t := range toks {
		fmt.Fprintf(h, "\x00%d:%d:%s", t.Start, t.End, t.Scope)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func cachedString(c *gocache.Cache, key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func gutterWidth(lines int) int {
	w := len(strconv.Itoa(max(lines, 1)))
	return max(w, 3)
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	m := newViewModel(path, string(data))
	defer m.session.Close()

	w, err := watcher.New(path, time.Duration(cfg.WatchDebounceMS)*time.Millisecond)
	if err != nil {
		log.ErrorErr(log.CatWatch, "watcher unavailable", err, "path", path)
	} else {
		ch, startErr := w.Start()
		if startErr != nil {
			log.ErrorErr(log.CatWatch, "watch start failed", startErr, "path", path)
			_ = w.Stop()
		} else {
			m.watch = w
			m.changes = ch
			defer func() { _ = w.Stop() }()
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
