package style

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Docstring is a documentation comment to be rendered.
type Docstring struct {
	// Name identifies the documented entity, e.g. a qualified function name.
	Name  string
	Kind  Kind
	Lines []string
}

// Result is the outcome of rendering a [Docstring].
//
// When Err is non-nil, Lines holds the unchanged input.
type Result struct {
	Err       error
	Docstring Docstring
	Lines     []string
}

// RenderAll renders docs concurrently using at most workers goroutines, or
// an unlimited number when workers is less than one.
//
// Results are returned in the order of docs. Rendering failures are
// reported per [Result] and never stop the batch; the returned error is
// non-nil only when ctx is canceled before every docstring was rendered.
func (s *Style) RenderAll(ctx context.Context, docs []Docstring, workers int) ([]Result, error) {
	results := make([]Result, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, doc := range docs {
		g.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err //nolint:wrapcheck // Context errors are returned as-is.
			}

			out, err := s.Render(doc.Kind, doc.Lines)
			if err != nil {
				slog.Warn("rendering docstring",
					slog.String("name", doc.Name),
					slog.String("kind", string(doc.Kind)),
					slog.Any("error", err),
				)
			}

			results[i] = Result{Docstring: doc, Lines: out, Err: err}

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return results, err //nolint:wrapcheck // Context errors are returned as-is.
	}

	return results, nil
}
