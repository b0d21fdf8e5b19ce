package style

import (
	"fmt"
	"maps"

	"go.jacobcolvin.com/sectiondoc/docstring"
	"go.jacobcolvin.com/sectiondoc/item"
	"go.jacobcolvin.com/sectiondoc/render"
)

const (
	// NameDefault is the name of the [Default] style.
	NameDefault = "default"
	// NameLegacy is the name of the [Legacy] style.
	NameLegacy = "legacy"
)

var builtins = map[string]func() *Style{
	NameDefault: Default,
	NameLegacy:  Legacy,
}

// GetAllBuiltinStrings returns the names of the built-in styles.
func GetAllBuiltinStrings() []string {
	return []string{NameDefault, NameLegacy}
}

// Builtin returns the built-in [Style] with the given name.
func Builtin(name string) (*Style, error) {
	fn, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}

	return fn(), nil
}

// Default returns the default style.
//
// Items use the [item.Definition] grammar, so "int or float" is read as two
// classifiers. Functions and methods get parameter fields and field lists;
// classes additionally get attribute directives and a methods table.
func Default() *Style {
	arguments := docstring.Section{Handler: docstring.HandlerItems, Renderer: render.KindArgument}
	fields := docstring.Section{Handler: docstring.HandlerItemList, Renderer: render.KindListItem}
	notes := docstring.Section{Handler: docstring.HandlerNotes}
	attributes := docstring.Section{Handler: docstring.HandlerItems, Renderer: render.KindAttribute}

	function := docstring.SectionMap{
		"Arguments":        arguments,
		"Parameters":       arguments,
		"Other Parameters": arguments,
		"Returns":          fields,
		"Raises":           fields,
		"Yields":           fields,
		"Warns":            fields,
		"Notes":            notes,
	}

	return &Style{
		Name: NameDefault,
		Sections: map[Kind]docstring.SectionMap{
			KindFunction: function,
			KindMethod:   maps.Clone(function),
			KindClass: {
				"Attributes": attributes,
				"Arguments":  arguments,
				"Parameters": arguments,
				"Methods":    {Handler: docstring.HandlerTable, Renderer: render.KindMethod},
				"Notes":      notes,
			},
			KindModule: {
				"Attributes": attributes,
				"Notes":      notes,
			},
		},
	}
}

// Legacy returns the legacy style, which only recognizes items written as
// "term :" or "term : classifier". Classes have no argument sections.
func Legacy() *Style {
	arguments := docstring.Section{
		Handler:  docstring.HandlerItems,
		Renderer: render.KindArgument,
		Grammar:  item.OrDefinition,
	}
	fields := docstring.Section{
		Handler:  docstring.HandlerItemList,
		Renderer: render.KindListItem,
		Grammar:  item.OrDefinition,
	}
	notes := docstring.Section{Handler: docstring.HandlerNotes}

	function := docstring.SectionMap{
		"Arguments":  arguments,
		"Parameters": arguments,
		"Returns":    fields,
		"Raises":     fields,
		"Yields":     fields,
		"Notes":      notes,
	}

	return &Style{
		Name: NameLegacy,
		Sections: map[Kind]docstring.SectionMap{
			KindFunction: function,
			KindMethod:   maps.Clone(function),
			KindClass: {
				"Attributes": {
					Handler:  docstring.HandlerItems,
					Renderer: render.KindAttribute,
					Grammar:  item.OrDefinition,
				},
				"Methods": {Handler: docstring.HandlerTable, Renderer: render.KindMethod},
				"Notes":   notes,
			},
		},
	}
}
