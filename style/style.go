package style

import (
	"errors"
	"fmt"
	"slices"

	"go.jacobcolvin.com/sectiondoc/docstring"
)

var (
	// ErrUnknownStyle indicates an unrecognized built-in style name.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrUnknownKind indicates an unrecognized kind of documented entity.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrInvalidStyleFile indicates a style file that could not be decoded
	// or does not conform to [Schema].
	ErrInvalidStyleFile = errors.New("invalid style file")
)

// Kind is the kind of entity a documentation comment is attached to.
type Kind string

const (
	// KindFunction is a free function.
	KindFunction Kind = "function"
	// KindMethod is a method of a class.
	KindMethod Kind = "method"
	// KindClass is a class.
	KindClass Kind = "class"
	// KindModule is a module.
	KindModule Kind = "module"
)

// GetAllKindStrings returns the names of all kinds, sorted.
func GetAllKindStrings() []string {
	return []string{
		string(KindClass),
		string(KindFunction),
		string(KindMethod),
		string(KindModule),
	}
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	if !slices.Contains(GetAllKindStrings(), s) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}

	return Kind(s), nil
}

// Style holds the section maps used for each [Kind].
//
// Create instances with [New], [Builtin], or [Parse].
type Style struct {
	Sections map[Kind]docstring.SectionMap
	Name     string
}

// New returns a [Style] after validating every section map.
func New(name string, sections map[Kind]docstring.SectionMap) (*Style, error) {
	var errs []error

	for kind, m := range sections {
		if !slices.Contains(GetAllKindStrings(), string(kind)) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownKind, kind))

			continue
		}

		err := m.Validate()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("style %q: %w", name, errors.Join(errs...))
	}

	return &Style{Name: name, Sections: sections}, nil
}

// Kinds returns the kinds that s has sections for, sorted.
func (s *Style) Kinds() []Kind {
	kinds := make([]Kind, 0, len(s.Sections))
	for k := range s.Sections {
		kinds = append(kinds, k)
	}

	slices.Sort(kinds)

	return kinds
}

// Render rewrites the documentation comment ls of an entity of the given
// kind. Comments of kinds without sections are returned unchanged.
//
// If rendering fails, ls is returned unchanged along with the error.
func (s *Style) Render(kind Kind, ls []string) ([]string, error) {
	sections, ok := s.Sections[kind]
	if !ok {
		return ls, nil
	}

	d := docstring.New(ls, sections)

	err := d.Render()
	if err != nil {
		return ls, err
	}

	return d.Lines(), nil
}
