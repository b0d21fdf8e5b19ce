// Package docstring rewrites the sections of a documentation comment in
// place.
//
// A [Document] owns the lines of one comment and a cursor into them. The
// scan loop in [Document.Render] walks the lines looking for section headers,
// which are a title line followed by an underline of '-' or '=' characters
// of matching length:
//
//	Arguments
//	---------
//	count : int
//	    Number of repetitions.
//
// Each header is looked up in a [SectionMap]. The matching [Section] selects
// a handler, an item grammar, and a renderer; the handler extracts the
// section's items, renders them, and the returned lines replace the section
// in the document. Headers missing from the map are rendered as a rubric and
// their body is left untouched.
//
// Typical usage renders a comment with a validated section map:
//
//	sections := docstring.SectionMap{
//		"Arguments": {Handler: docstring.HandlerItems, Renderer: render.KindArgument},
//		"Notes":     {Handler: docstring.HandlerNotes},
//	}
//
//	out, err := docstring.Render(lines, sections)
//
// A [Document] is not safe for concurrent use, but documents share no state,
// so separate comments may be rendered in parallel.
package docstring
