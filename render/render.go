// Package render turns parsed [item.Item] values into reStructuredText lines.
//
// Each renderer is a [Func] selected by [Kind]. Renderers pick one of a small
// set of templates from the item's [item.Mode] and substitute the term,
// classifiers, and definition into it. The table renderers ([KindMethod] and
// [KindTableRow]) produce a single fixed-width row and are laid out by
// [Table], which computes the column widths for the whole section.
package render

import (
	"errors"
	"fmt"
	"slices"

	"go.jacobcolvin.com/sectiondoc/item"
)

// ErrUnknownRenderer indicates an unrecognized renderer name.
var ErrUnknownRenderer = errors.New("unknown renderer")

// Kind identifies a renderer.
type Kind string

const (
	// KindDefinition renders a definition list entry.
	KindDefinition Kind = "definition"
	// KindArgument renders ":param:" and ":type:" fields.
	KindArgument Kind = "argument"
	// KindAttribute renders an ".. attribute::" directive.
	KindAttribute Kind = "attribute"
	// KindListItem renders a bold term with an optional bullet prefix.
	KindListItem Kind = "list-item"
	// KindTableRow renders a term, classifiers, and summary table row.
	KindTableRow Kind = "table-row"
	// KindMethod renders a ":meth:" reference and summary table row.
	KindMethod Kind = "method"
)

// Options carries the per-section layout passed to every [Func].
type Options struct {
	// Prefix is the bullet marker used by [KindListItem]. Empty means no
	// marker.
	Prefix string
	// Columns holds the column widths used by the table row renderers.
	Columns []int
}

// Func renders a single item.
type Func func(it item.Item, opts Options) []string

var funcs = map[Kind]Func{
	KindDefinition: Definition,
	KindArgument:   Argument,
	KindAttribute:  Attribute,
	KindListItem:   ListItem,
	KindTableRow:   TableRow,
	KindMethod:     Method,
}

// Lookup returns the [Func] for k.
func Lookup(k Kind) (Func, error) {
	fn, ok := funcs[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, k)
	}

	return fn, nil
}

// ParseKind parses a renderer name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := funcs[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRenderer, s)
	}

	return k, nil
}

// IsTabular reports whether k renders table rows, which must be laid out
// with [Table].
func (k Kind) IsTabular() bool {
	return k == KindMethod || k == KindTableRow
}

// GetAllKindStrings returns the names of all renderers, sorted.
func GetAllKindStrings() []string {
	names := make([]string, 0, len(funcs))
	for k := range funcs {
		names = append(names, string(k))
	}

	slices.Sort(names)

	return names
}
