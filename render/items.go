package render

import (
	"strings"

	"go.jacobcolvin.com/sectiondoc/item"
	"go.jacobcolvin.com/sectiondoc/lines"
)

// Definition renders it as a definition list entry:
//
//	term
//
//	    *(classifier or classifier)* --
//	    definition
//
// The output ends with an empty line.
func Definition(it item.Item, _ Options) []string {
	out := []string{it.Term}
	if it.Mode() == item.ModeOnlyTerm {
		return append(out, "")
	}

	out = append(out, "")

	if len(it.Classifiers) > 0 {
		annotation := "    *(" + strings.Join(it.Classifiers, " or ") + ")*"
		if it.HasDefinition() {
			annotation += " --"
		}

		out = append(out, annotation)
	}

	if it.HasDefinition() {
		out = append(out, lines.AddIndent(it.Definition, lines.DefaultIndent)...)
	}

	return append(out, "")
}

// Argument renders it as a parameter field list:
//
//	:param term:
//	    definition
//	:type term: classifier or classifier
//
// The type field is omitted when there are no classifiers and the body is
// omitted when there is no definition. Leading stars and a trailing
// underscore of the term are escaped.
func Argument(it item.Item, _ Options) []string {
	term := lines.EscapeTrailingUnderscore(lines.EscapeLeadingStars(it.Term))

	out := []string{":param " + term + ":"}

	if it.HasDefinition() {
		out = append(out, lines.AddIndent(it.Definition, lines.DefaultIndent)...)
	}

	if len(it.Classifiers) > 0 {
		out = append(out, ":type "+term+": "+strings.Join(it.Classifiers, " or "))
	}

	return out
}

// Attribute renders it as an attribute directive, followed by an empty line.
func Attribute(it item.Item, _ Options) []string {
	out := []string{".. attribute:: " + it.Term}

	if len(it.Classifiers) > 0 {
		out = append(out, "    :annotation: = "+strings.Join(it.Classifiers, " or "))
	}

	out = append(out, "")

	if it.HasDefinition() {
		out = append(out, lines.AddIndent(it.Definition, lines.DefaultIndent)...)
		out = append(out, "")
	}

	return out
}

// ListItem renders it as a list entry:
//
//	- **term** (*classifier or classifier*) -- definition
//
// A one-line definition stays on the term line. Longer definitions start on
// the next line, indented to align with the text after the prefix. The
// output ends with an empty line.
func ListItem(it item.Item, opts Options) []string {
	head := "**" + it.Term + "**"
	if len(it.Classifiers) > 0 {
		head += " (*" + strings.Join(it.Classifiers, " or ") + "*)"
	}

	indent := 0
	if opts.Prefix != "" {
		head = opts.Prefix + " " + head
		indent = lines.Width(opts.Prefix) + 1
	}

	if !it.HasDefinition() {
		return []string{head, ""}
	}

	head += " --"

	if len(it.Definition) == 1 {
		return []string{head + " " + it.Definition[0], ""}
	}

	out := []string{head}
	out = append(out, lines.AddIndent(it.Definition, indent)...)

	return append(out, "")
}
