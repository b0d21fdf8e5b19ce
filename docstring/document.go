package docstring

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"go.jacobcolvin.com/sectiondoc/item"
	"go.jacobcolvin.com/sectiondoc/lines"
)

var underlineRegex = regexp.MustCompile(`^\s*\S+\s*$`)

// Document is a documentation comment being rewritten, with a cursor at
// the line currently processed.
//
// Create instances with [New].
type Document struct {
	sections  SectionMap
	lines     []string
	bookmarks []int
	index     int
}

// New returns a [Document] holding a copy of ls, with the cursor at the first
// line. Sections are rendered with the handlers in sections.
func New(ls []string, sections SectionMap) *Document {
	return &Document{
		lines:    slices.Clone(ls),
		sections: sections,
	}
}

// Render rewrites ls with sections and returns the result. The section map
// is validated first. On error, no lines are returned and ls is unchanged.
func Render(ls []string, sections SectionMap) ([]string, error) {
	err := sections.Validate()
	if err != nil {
		return nil, err
	}

	d := New(ls, sections)

	err = d.Render()
	if err != nil {
		return nil, err
	}

	return d.Lines(), nil
}

// Lines returns a copy of the current lines.
func (d *Document) Lines() []string {
	return slices.Clone(d.lines)
}

// Index returns the cursor position.
func (d *Document) Index() int {
	return d.index
}

// Seek moves the cursor to line i.
func (d *Document) Seek(i int) {
	d.index = i
}

// EOD reports whether the cursor is past the last line.
func (d *Document) EOD() bool {
	return d.index >= len(d.lines)
}

// Peek returns the line ahead lines after the cursor, or "" past the end.
func (d *Document) Peek(ahead int) string {
	return d.lineAt(d.index + ahead)
}

// Read returns the line at the cursor and advances the cursor. It panics
// past the end.
func (d *Document) Read() string {
	d.mustHave(1)

	line := d.lines[d.index]
	d.index++

	return line
}

// Pop removes and returns the line at the cursor. It panics past the end.
func (d *Document) Pop() string {
	d.mustHave(1)

	line := d.lines[d.index]
	d.splice(d.index, 1, nil)

	return line
}

// Remove removes n lines starting at the cursor. It panics if fewer than n
// lines remain.
func (d *Document) Remove(n int) {
	d.mustHave(n)
	d.splice(d.index, n, nil)
}

// RemoveIfBlank removes the line at the cursor if it is blank, and reports
// whether it did.
func (d *Document) RemoveIfBlank() bool {
	if d.EOD() || !lines.IsBlank(d.lines[d.index]) {
		return false
	}

	d.splice(d.index, 1, nil)

	return true
}

// Insert inserts ls before the line at the cursor and returns the number of
// lines added. The cursor is not moved.
func (d *Document) Insert(ls []string) int {
	return d.splice(d.index, 0, ls)
}

// SeekNonBlank advances the cursor to the next non-blank line, or to the end.
func (d *Document) SeekNonBlank() {
	for !d.EOD() && lines.IsBlank(d.lines[d.index]) {
		d.index++
	}
}

// NextParagraph removes and returns the lines from the cursor up to the next
// blank line.
func (d *Document) NextParagraph() []string {
	var paragraph []string
	for !d.EOD() && !lines.IsBlank(d.Peek(0)) {
		paragraph = append(paragraph, d.Pop())
	}

	return paragraph
}

// NextBlock removes and returns the item block at the cursor: the header
// line followed by every line indented deeper than it. A single blank line
// is part of the block when the line after it is indented deeper. Trailing
// whitespace is removed from the body lines.
func (d *Document) NextBlock() []string {
	header := d.Pop()
	sub := lines.IndentOf(header) + " "
	block := []string{header}

	for !d.EOD() {
		line, next := d.Peek(0), d.Peek(1)

		if lines.IsBlank(line) && !strings.HasPrefix(next, sub) {
			break
		}

		if !lines.IsBlank(line) && !strings.HasPrefix(line, sub) {
			break
		}

		block = append(block, strings.TrimRightFunc(d.Pop(), unicode.IsSpace))
	}

	return block
}

// maxItemGap is the largest number of blank lines allowed between items.
const maxItemGap = 2

// ExtractItems removes the items of grammar g starting at the cursor and
// returns them parsed. Extraction continues while the next non-blank line is
// an item header that is not itself a section header, and at most
// [maxItemGap] blank lines precede it. Blank lines between items are
// removed.
//
// A header that matches g but cannot be parsed is an error, and the
// document should be discarded.
func (d *Document) ExtractItems(g item.Grammar) ([]item.Item, error) {
	var blocks [][]string

	for {
		d.Bookmark()
		d.SeekNonBlank()

		next := d.index
		start, _ := d.GotoBookmark()

		if next-start > maxItemGap || next >= len(d.lines) || !g.Match(d.lines[next]) {
			break
		}

		if _, ok := d.headerAt(next); ok {
			break
		}

		d.splice(start, next-start, nil)
		blocks = append(blocks, d.NextBlock())
	}

	items := make([]item.Item, 0, len(blocks))
	for _, block := range blocks {
		it, err := g.Parse(block)
		if err != nil {
			return nil, err
		}

		items = append(items, it)
	}

	return items, nil
}

// SectionHeader returns the title of the section starting at the cursor, if
// the current and next line form a section header.
func (d *Document) SectionHeader() (string, bool) {
	return d.headerAt(d.index)
}

// headerAt checks for a title at line i and an underline at line i+1. The
// underline must repeat one of '-' or '=' once for each non-space character
// of the title and for each space directly after one.
func (d *Document) headerAt(i int) (string, bool) {
	if i < 0 || i >= len(d.lines) {
		return "", false
	}

	header := d.lines[i]
	underline := d.lineAt(i + 1)

	if !underlineRegex.MatchString(underline) {
		return "", false
	}

	title := strings.TrimRightFunc(header, unicode.IsSpace)
	underline = strings.TrimRightFunc(underline, unicode.IsSpace)
	width := underlineWidth(title)

	for _, c := range []string{"-", "="} {
		if underline == strings.Repeat(c, width) {
			return strings.TrimSpace(header), true
		}
	}

	return "", false
}

func underlineWidth(title string) int {
	n := 0

	prev := ' '
	for _, r := range title {
		if !unicode.IsSpace(r) || !unicode.IsSpace(prev) {
			n++
		}

		prev = r
	}

	return n
}

// Bookmark saves the cursor position.
func (d *Document) Bookmark() {
	d.bookmarks = append(d.bookmarks, d.index)
}

// GotoBookmark moves the cursor to the most recent bookmark and removes it.
// It returns the restored position, or false if there are no bookmarks.
func (d *Document) GotoBookmark() (int, bool) {
	if len(d.bookmarks) == 0 {
		return d.index, false
	}

	last := len(d.bookmarks) - 1
	d.index = d.bookmarks[last]
	d.bookmarks = d.bookmarks[:last]

	return d.index, true
}

// Render rewrites every section of the document.
//
// Blank lines and lines that do not start a section are skipped. For each
// section header, the header and its underline are removed, along with one
// blank line after them. The section's handler then consumes the section
// body, and its output is inserted at the cursor and skipped over.
func (d *Document) Render() error {
	d.index = 0
	d.SeekNonBlank()

	for !d.EOD() {
		header, ok := d.SectionHeader()
		if !ok {
			d.index++
			d.SeekNonBlank()

			continue
		}

		out, err := d.renderSection(header)
		if err != nil {
			return err
		}

		d.index += d.Insert(out)
	}

	return nil
}

func (d *Document) renderSection(header string) ([]string, error) {
	d.Remove(2)
	d.RemoveIfBlank()

	s, ok := d.sections[header]
	if !ok {
		slog.Debug("rendering unknown section as rubric", slog.String("header", header))

		s = Section{Handler: HandlerRubric}
	}

	out, err := s.handle(d, header)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", header, err)
	}

	return out, nil
}

// splice replaces n lines at position at with insert, and returns the
// change in the number of lines. All buffer mutation goes through here.
func (d *Document) splice(at, n int, insert []string) int {
	d.lines = slices.Replace(d.lines, at, at+n, insert...)

	return len(insert) - n
}

func (d *Document) lineAt(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}

	return d.lines[i]
}

func (d *Document) mustHave(n int) {
	if d.index+n > len(d.lines) {
		panic(fmt.Sprintf("docstring: %d line(s) requested at line %d of %d", n, d.index, len(d.lines)))
	}
}
