// Package item models the entries of a docstring section: a term, optional
// classifiers, and a definition body.
//
// A [Grammar] recognizes item header lines and parses an item block (the
// header line followed by its indented body) into an [Item]. All grammars
// share one parser; they differ in the header pattern they accept and in the
// [Policy] used to split the header into a term and classifiers.
package item

import (
	"strings"
)

// Item is one documented element of a section.
//
// Term holds no surrounding whitespace. Classifiers are the type or signature
// annotations of the term. Definition holds the body with the item's common
// indentation removed and trailing whitespace trimmed; an item without a body
// has a definition of one empty line.
type Item struct {
	Term        string
	Classifiers []string
	Definition  []string
}

// New returns an [Item]. A nil or empty definition is replaced by a new
// slice holding one empty line.
func New(term string, classifiers []string, definition []string) Item {
	if len(definition) == 0 {
		definition = []string{""}
	}

	return Item{
		Term:        term,
		Classifiers: classifiers,
		Definition:  definition,
	}
}

// HasDefinition reports whether the item carries a body.
func (it Item) HasDefinition() bool {
	return len(it.Definition) > 1 || (len(it.Definition) == 1 && it.Definition[0] != "")
}

// Mode returns the rendering mode of the item. It is derived from the
// classifiers and definition every time it is called.
func (it Item) Mode() Mode {
	switch {
	case len(it.Classifiers) == 0 && !it.HasDefinition():
		return ModeOnlyTerm
	case len(it.Classifiers) == 0:
		return ModeNoClassifiers
	case !it.HasDefinition():
		return ModeNoDefinition
	default:
		return ModeFull
	}
}

// Signature returns the call signature of a method item, e.g.
// "get(key, default=None)".
func (it Item) Signature() string {
	return it.Term + "(" + strings.Join(it.Classifiers, ", ") + ")"
}

// Mode selects the output template used to render an [Item].
type Mode string

const (
	// ModeOnlyTerm is an item with neither classifiers nor a definition.
	ModeOnlyTerm Mode = "only_term"
	// ModeNoClassifiers is an item with a definition but no classifiers.
	ModeNoClassifiers Mode = "no_classifiers"
	// ModeNoDefinition is an item with classifiers but no definition.
	ModeNoDefinition Mode = "no_definition"
	// ModeFull is an item with both classifiers and a definition.
	ModeFull Mode = "full"
)
