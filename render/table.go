package render

import (
	"fmt"
	"strings"
	"unicode"

	"go.jacobcolvin.com/sectiondoc/item"
	"go.jacobcolvin.com/sectiondoc/lines"
)

// Characters surrounding the signature and term in a method role, as in
// ":meth:`get(key) <get>`".
const methodRoleBoilerplate = len(":meth:`") + len(" <") + len(">`")

var (
	methodHeadings = []string{"Method", "Description"}
	rowHeadings    = []string{"Name", "Type", "Description"}
)

// Method renders it as one row of a methods table: a ":meth:" role holding
// the signature, then the reflowed definition. Cells are clipped to
// opts.Columns.
func Method(it item.Item, opts Options) []string {
	role := ":meth:`" + it.Signature() + " <" + it.Term + ">`"

	return []string{row([]string{role, lines.Reflow(it.Definition)}, opts.Columns)}
}

// TableRow renders it as one table row with term, classifiers, and the
// reflowed definition. Cells are clipped to opts.Columns and a column with
// width 0 is left out.
func TableRow(it item.Item, opts Options) []string {
	cells := []string{
		it.Term,
		strings.Join(it.Classifiers, ", "),
		lines.Reflow(it.Definition),
	}

	return []string{row(cells, opts.Columns)}
}

// MethodColumns returns the widths of the role and description columns of a
// methods table.
//
// The role column is sized from two candidates: the item with the longest
// term and the item with the longest signature (the first of each on ties).
// The larger of their term plus signature lengths is used, so an item that
// is neither may be clipped.
func MethodColumns(items []item.Item) [2]int {
	if len(items) == 0 {
		return [2]int{}
	}

	termIdx, sigIdx := 0, 0
	definition := 0

	for i, it := range items {
		if lines.Width(it.Term) > lines.Width(items[termIdx].Term) {
			termIdx = i
		}

		if lines.Width(it.Signature()) > lines.Width(items[sigIdx].Signature()) {
			sigIdx = i
		}

		definition = max(definition, lines.Width(lines.Reflow(it.Definition)))
	}

	role := max(roleLength(items[termIdx]), roleLength(items[sigIdx]))

	return [2]int{role + methodRoleBoilerplate, definition}
}

func roleLength(it item.Item) int {
	return lines.Width(it.Term) + lines.Width(it.Signature())
}

// RowColumns returns the widths of the term, classifiers, and description
// columns needed to fit every item. A column is 0 when no item has content
// for it.
func RowColumns(items []item.Item) [3]int {
	var cols [3]int

	for _, it := range items {
		cols[0] = max(cols[0], lines.Width(it.Term))
		cols[1] = max(cols[1], lines.Width(strings.Join(it.Classifiers, ", ")))
		cols[2] = max(cols[2], lines.Width(lines.Reflow(it.Definition)))
	}

	return cols
}

// Table lays out items as a reStructuredText simple table using the row
// renderer k. Zero items produce no output at all.
func Table(k Kind, items []item.Item) ([]string, error) {
	if len(items) == 0 {
		return nil, nil
	}

	var (
		widths   []int
		headings []string
	)

	switch k {
	case KindMethod:
		cols := MethodColumns(items)
		widths, headings = cols[:], methodHeadings
	case KindTableRow:
		cols := RowColumns(items)
		widths, headings = cols[:], rowHeadings
	default:
		return nil, fmt.Errorf("%w: %q does not render table rows", ErrUnknownRenderer, k)
	}

	fn := funcs[k]

	// Headings widen their column, but empty columns stay hidden.
	for i, w := range widths {
		if w > 0 {
			widths[i] = max(w, lines.Width(headings[i]))
		}
	}

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("=", w)
	}

	border := row(rules, widths)

	out := []string{border, row(headings, widths), border}

	opts := Options{Columns: widths}
	for _, it := range items {
		out = append(out, fn(it, opts)...)
	}

	return append(out, border, ""), nil
}

// row places each cell at its column, separated by one space.
func row(cells []string, widths []int) string {
	var (
		line   string
		column int
	)

	for i, cell := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}

		if w <= 0 {
			continue
		}

		line = lines.ReplaceAt(lines.Clip(cell, w), line, column)
		column += w + 1
	}

	return strings.TrimRightFunc(line, unicode.IsSpace)
}
