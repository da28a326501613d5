// Package render turns highlighted lines into styled terminal strings.
// It is the only consumer of scope strings on the display side; the
// engine stays color-free.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"glint/internal/theme"
	"glint/internal/token"
)

// Line renders one line with its tokens. Overlapping tokens resolve by
// first-wins per cell in sorted order; gaps keep the default text style.
// Tabs expand to four spaces at output time only, so token columns keep
// addressing the raw line.
func Line(text string, tokens []token.Token, p theme.Palette) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	scopes := scopeMask(len(runes), tokens)

	var b strings.Builder
	for i := 0; i < len(runes); {
		sc := scopeAt(scopes, i)
		j := i + 1
		for j < len(runes) && scopeAt(scopes, j) == sc {
			j++
		}
		seg := strings.ReplaceAll(string(runes[i:j]), "\t", "    ")
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.ColorFor(sc)))
		b.WriteString(style.Render(seg))
		i = j
	}
	return b.String()
}

// Gutter formats a 1-based line number right-aligned to width digits.
func Gutter(lineNo, width int, p theme.Palette) string {
	num := strconv.Itoa(lineNo)
	if pad := width - len(num); pad > 0 {
		num = strings.Repeat(" ", pad) + num
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.LineNumber))
	return style.Render(num + " ")
}

// scopeMask assigns each rune cell the scope of the first covering token.
func scopeMask(runeLen int, tokens []token.Token) []string {
	if runeLen <= 0 || len(tokens) == 0 {
		return nil
	}
	mask := make([]string, runeLen)
	for _, t := range tokens {
		start := clamp(t.Start, 0, runeLen)
		end := clamp(t.End, 0, runeLen)
		for i := start; i < end; i++ {
			if mask[i] == "" {
				mask[i] = t.Scope
			}
		}
	}
	return mask
}

func scopeAt(mask []string, idx int) string {
	if idx < 0 || idx >= len(mask) {
		return ""
	}
	return mask[idx]
}

// Truncate cuts plain text to maxWidth terminal cells with an ellipsis,
// flattening newlines and tabs first.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", "    ")

	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads a styled string with spaces to width cells, measuring
// through any ANSI sequences.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
