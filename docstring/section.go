package docstring

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.jacobcolvin.com/sectiondoc/item"
	"go.jacobcolvin.com/sectiondoc/lines"
	"go.jacobcolvin.com/sectiondoc/render"
)

// ErrInvalidSection indicates a [Section] that does not resolve to a usable
// handler, renderer, and grammar.
var ErrInvalidSection = errors.New("invalid section")

// HandlerKind identifies how a section body is rewritten.
type HandlerKind string

const (
	// HandlerItems renders each item of the section in sequence.
	HandlerItems HandlerKind = "items"
	// HandlerItemList renders the items as a field list named after the
	// section header, with bullets when there is more than one item.
	HandlerItemList HandlerKind = "item-list"
	// HandlerTable renders the items as a simple table.
	HandlerTable HandlerKind = "table"
	// HandlerNotes wraps the first paragraph of the section in a note
	// directive.
	HandlerNotes HandlerKind = "notes"
	// HandlerRubric replaces the header with a rubric directive and leaves
	// the body alone. Headers without a [Section] use it.
	HandlerRubric HandlerKind = "rubric"
)

type handlerFunc func(d *Document, header string, s Section) ([]string, error)

var handlers = map[HandlerKind]handlerFunc{
	HandlerItems:    handleItems,
	HandlerItemList: handleItemList,
	HandlerTable:    handleTable,
	HandlerNotes:    handleNotes,
	HandlerRubric:   handleRubric,
}

// Renderers accepted by each handler. The first entry is used when the
// section leaves the renderer empty.
var compatibleRenderers = map[HandlerKind][]render.Kind{
	HandlerItems: {
		render.KindArgument, render.KindAttribute,
		render.KindDefinition, render.KindListItem,
	},
	HandlerItemList: {render.KindListItem, render.KindDefinition},
	HandlerTable:    {render.KindMethod, render.KindTableRow},
}

// GetAllHandlerStrings returns the names of all handlers, sorted.
func GetAllHandlerStrings() []string {
	names := make([]string, 0, len(handlers))
	for k := range handlers {
		names = append(names, string(k))
	}

	slices.Sort(names)

	return names
}

// ParseHandlerKind parses a handler name.
func ParseHandlerKind(s string) (HandlerKind, error) {
	k := HandlerKind(s)
	if _, ok := handlers[k]; !ok {
		return "", fmt.Errorf("%w: unknown handler %q", ErrInvalidSection, s)
	}

	return k, nil
}

// Section configures how one section header is rendered.
type Section struct {
	// Handler rewrites the section body.
	Handler HandlerKind
	// Renderer renders each item. It must be empty for [HandlerNotes] and
	// [HandlerRubric]. When empty for other handlers, the handler's default
	// is used.
	Renderer render.Kind
	// Grammar recognizes and parses the items. When zero, [item.Method] is
	// used for method tables and [item.Definition] otherwise.
	Grammar item.Grammar
}

// Validate reports whether s resolves to a known handler with a compatible
// renderer and grammar.
func (s Section) Validate() error {
	if _, ok := handlers[s.Handler]; !ok {
		return fmt.Errorf("%w: unknown handler %q", ErrInvalidSection, s.Handler)
	}

	accepted, itemized := compatibleRenderers[s.Handler]
	if !itemized {
		if s.Renderer != "" {
			return fmt.Errorf("%w: handler %q does not use a renderer, got %q",
				ErrInvalidSection, s.Handler, s.Renderer)
		}

		if !s.Grammar.IsZero() {
			return fmt.Errorf("%w: handler %q does not use an item grammar, got %q",
				ErrInvalidSection, s.Handler, s.Grammar.Name)
		}

		return nil
	}

	if s.Renderer == "" {
		return nil
	}

	if _, err := render.Lookup(s.Renderer); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSection, err)
	}

	if !slices.Contains(accepted, s.Renderer) {
		return fmt.Errorf("%w: handler %q cannot use renderer %q",
			ErrInvalidSection, s.Handler, s.Renderer)
	}

	return nil
}

func (s Section) renderer() render.Kind {
	if s.Renderer != "" {
		return s.Renderer
	}

	return compatibleRenderers[s.Handler][0]
}

func (s Section) grammar() item.Grammar {
	if !s.Grammar.IsZero() {
		return s.Grammar
	}

	if s.Handler == HandlerTable && s.renderer() == render.KindMethod {
		return item.Method
	}

	return item.Definition
}

func (s Section) handle(d *Document, header string) ([]string, error) {
	err := s.Validate()
	if err != nil {
		return nil, err
	}

	return handlers[s.Handler](d, header, s)
}

// SectionMap maps section headers to their [Section]. Header matching is
// exact and case-sensitive.
type SectionMap map[string]Section

// Validate checks every section in m and returns all problems found.
func (m SectionMap) Validate() error {
	var errs []error

	for _, header := range m.Headers() {
		err := m[header].Validate()
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", header, err))
		}
	}

	return errors.Join(errs...)
}

// Headers returns the section headers of m, sorted.
func (m SectionMap) Headers() []string {
	headers := make([]string, 0, len(m))
	for header := range m {
		headers = append(headers, header)
	}

	slices.Sort(headers)

	return headers
}

func renderEach(items []item.Item, k render.Kind, opts render.Options) ([]string, error) {
	fn, err := render.Lookup(k)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, it := range items {
		out = append(out, fn(it, opts)...)
	}

	return out, nil
}

func handleItems(d *Document, _ string, s Section) ([]string, error) {
	items, err := d.ExtractItems(s.grammar())
	if err != nil {
		return nil, err
	}

	return renderEach(items, s.renderer(), render.Options{})
}

func handleItemList(d *Document, header string, s Section) ([]string, error) {
	items, err := d.ExtractItems(s.grammar())
	if err != nil {
		return nil, err
	}

	var opts render.Options
	if len(items) > 1 {
		opts.Prefix = "-"
	}

	body, err := renderEach(items, s.renderer(), opts)
	if err != nil {
		return nil, err
	}

	out := []string{":" + strings.ToLower(header) + ":"}

	return append(out, lines.AddIndent(body, lines.DefaultIndent)...), nil
}

func handleTable(d *Document, _ string, s Section) ([]string, error) {
	items, err := d.ExtractItems(s.grammar())
	if err != nil {
		return nil, err
	}

	return render.Table(s.renderer(), items)
}

func handleNotes(d *Document, _ string, _ Section) ([]string, error) {
	out := []string{".. note::"}

	return append(out, lines.AddIndent(d.NextParagraph(), lines.DefaultIndent)...), nil
}

func handleRubric(_ *Document, header string, _ Section) ([]string, error) {
	return []string{".. rubric:: " + lines.EscapeBackslashes(header), ""}, nil
}
