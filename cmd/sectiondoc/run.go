package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"go.jacobcolvin.com/sectiondoc/style"
)

const stdinName = "-"

var (
	errRenderFailed = errors.New("some files could not be rewritten")
	errWriteStdin   = errors.New("cannot use --write with standard input")
)

type app struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	styleCfg *style.Config
	kind     string
	diff     bool
	list     bool
	write    bool
}

func (a *app) run(ctx context.Context, args []string) error {
	kind, err := style.ParseKind(a.kind)
	if err != nil {
		return err
	}

	if a.write && slices.Contains(args, stdinName) {
		return errWriteStdin
	}

	s, err := a.styleCfg.NewStyle()
	if err != nil {
		return err
	}

	docs := make([]style.Docstring, 0, len(args))

	for _, path := range args {
		data, err := a.read(path)
		if err != nil {
			return err
		}

		docs = append(docs, style.Docstring{Name: path, Kind: kind, Lines: splitLines(data)})
	}

	slog.Debug("rendering docstrings",
		slog.String("style", s.Name),
		slog.String("kind", string(kind)),
		slog.Int("files", len(docs)),
	)

	results, err := s.RenderAll(ctx, docs, a.styleCfg.Workers)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	var (
		changed, failed int
		written         uint64
		d               = newDiffer(a.stdout)
	)

	for _, r := range results {
		path := r.Docstring.Name

		if r.Err != nil {
			failed++

			fmt.Fprintf(a.stderr, "%s: %v\n", path, r.Err)

			continue
		}

		out := joinLines(r.Lines)

		if !a.diff && !a.list && !a.write {
			_, err := io.WriteString(a.stdout, out)
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			continue
		}

		if slices.Equal(r.Lines, r.Docstring.Lines) {
			continue
		}

		changed++

		if a.list {
			fmt.Fprintln(a.stdout, path)
		}

		if a.diff {
			err := d.write(path, r.Docstring.Lines, r.Lines)
			if err != nil {
				return fmt.Errorf("write diff: %w", err)
			}
		}

		if a.write {
			err := writeFile(path, out)
			if err != nil {
				failed++

				fmt.Fprintf(a.stderr, "%s: %v\n", path, err)

				continue
			}

			written += uint64(len(out))
		}
	}

	slog.Info("rewrote docstrings",
		slog.Int("files", len(results)),
		slog.Int("changed", changed),
		slog.Int("failed", failed),
		slog.String("written", humanize.Bytes(written)),
	)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errRenderFailed, failed, len(results))
	}

	return nil
}

func (a *app) read(path string) (string, error) {
	if path == stdinName {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Input paths from CLI arguments are expected.
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(data), nil
}

func writeFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	err = os.WriteFile(path, []byte(content), info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

// splitLines splits text into lines. A final newline does not start a new
// line, and CRLF line endings are normalized.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

func joinLines(ls []string) string {
	if len(ls) == 0 {
		return ""
	}

	return strings.Join(ls, "\n") + "\n"
}
