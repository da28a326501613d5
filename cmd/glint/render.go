package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"glint"
	"glint/internal/log"
	"glint/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>...",
	Short: "Highlight files and print them to stdout",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Bool("no-gutter", false, "omit line numbers")
}

func runRender(cmd *cobra.Command, args []string) error {
	noGutter, _ := cmd.Flags().GetBool("no-gutter")

	workers := cfg.RenderWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// One session per file, one goroutine per file. Sessions are not
	// shared, so no locking is needed.
	outputs := make([]string, len(args))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i, path := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			outputs[i] = renderFile(path, string(data), !noGutter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range outputs {
		if len(args) > 1 {
			header := lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color(palette.Function)).
				Render(args[i])
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(header)
		}
		fmt.Print(out)
	}
	return nil
}

func renderFile(path, content string, gutter bool) string {
	s := glint.NewSession(sessionOptions()...)
	defer s.Close()

	id := detectLanguage(path, content)
	if !s.SetLanguage(id) {
		log.Debug(log.CatRender, "no highlighter for file", "path", path, "lang", id)
	}
	s.Parse(content)

	// A newline-terminated file carries a final empty line; printing a
	// gutter row for it would add a blank line cat does not show.
	n := s.LineCount()
	if n > 0 && s.Line(n-1) == "" {
		n--
	}

	width := gutterWidth(n)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if gutter {
			b.WriteString(render.Gutter(i+1, width, palette))
		}
		b.WriteString(render.Line(s.Line(i), s.HighlightLine(i), palette))
		b.WriteByte('\n')
	}
	return b.String()
}
