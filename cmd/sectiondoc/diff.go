package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/term"
)

// differ writes line diffs, coloured when the output is a terminal.
type differ struct {
	w       io.Writer
	header  lipgloss.Style
	deleted lipgloss.Style
	added   lipgloss.Style
	color   bool
}

func newDiffer(w io.Writer) *differ {
	return &differ{
		w:       w,
		color:   isTerminal(w),
		header:  lipgloss.NewStyle().Bold(true),
		deleted: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in an int.
}

// write prints the whole of after, marking the lines removed from before
// with "-" and the lines added with "+".
func (d *differ) write(path string, before, after []string) error {
	dmp := diffmatchpatch.New()

	a, b, lineArray := dmp.DiffLinesToChars(joinLines(before), joinLines(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var sb strings.Builder

	sb.WriteString(d.paint(d.header, "--- "+path) + "\n")
	sb.WriteString(d.paint(d.header, "+++ "+path) + "\n")

	for _, df := range diffs {
		for _, line := range strings.SplitAfter(df.Text, "\n") {
			if line == "" {
				continue
			}

			line = strings.TrimSuffix(line, "\n")

			switch df.Type {
			case diffmatchpatch.DiffDelete:
				sb.WriteString(d.paint(d.deleted, "-"+line))
			case diffmatchpatch.DiffInsert:
				sb.WriteString(d.paint(d.added, "+"+line))
			case diffmatchpatch.DiffEqual:
				sb.WriteString(" " + line)
			}

			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(d.w, sb.String())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func (d *differ) paint(s lipgloss.Style, text string) string {
	if !d.color {
		return text
	}

	return s.Render(text)
}
