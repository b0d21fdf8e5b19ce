package item

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.jacobcolvin.com/sectiondoc/lines"
)

var (
	// ErrMalformedItem indicates a header line that was recognized as an
	// item but could not be split into a term and classifiers.
	ErrMalformedItem = errors.New("malformed item")
	// ErrUnknownGrammar indicates an unrecognized grammar name.
	ErrUnknownGrammar = errors.New("unknown item grammar")
)

// Policy controls how an item header is split into a term and classifiers.
type Policy int

const (
	// PolicyNone keeps the whole header as the term.
	PolicyNone Policy = iota
	// PolicySingle keeps all text after the first " :" as one opaque
	// classifier. A header without " :" is all term.
	PolicySingle
	// PolicyOr splits the text after the first " :" into alternatives
	// separated by the word "or".
	PolicyOr
	// PolicyColonChain splits the header on " :" and each component into
	// alternatives separated by the word "or".
	PolicyColonChain
)

const (
	termExpr       = `\*{0,2}\w+`
	classifierExpr = `[\w.]+(?:\(.*\))?`
	alternateExpr  = classifierExpr + `(?:\s+or\s+` + classifierExpr + `)*`
)

var (
	definitionRegex   = regexp.MustCompile(`^` + termExpr + `(?:\s:(?:\s+` + alternateExpr + `)?)*\s*$`)
	orDefinitionRegex = regexp.MustCompile(`^` + termExpr + `\s:(?:\s+` + alternateExpr + `)?\s*$`)
	anyRegex          = regexp.MustCompile(`^` + termExpr + `(?:\s*:.*|\s.*)?$`)
	termRegex         = regexp.MustCompile(`^` + termExpr + `\s*$`)
	methodRegex       = regexp.MustCompile(`^\w+\(.*\)\s*`)

	headerRegex     = regexp.MustCompile(`\s:\s?`)
	orRegex         = regexp.MustCompile(`\s+or\s+`)
	colonRegex      = regexp.MustCompile(`\s:`)
)

// Grammar recognizes and parses the items of a section.
type Grammar struct {
	pattern *regexp.Regexp
	// Name identifies the grammar in style files.
	Name string
	// Policy splits the header into a term and classifiers.
	Policy Policy
	// Signature parses headers as call signatures "name(args)", producing
	// the argument list as the single classifier.
	Signature bool
}

// Built-in grammars.
var (
	// Definition accepts "term", "term : classifier" and chains of
	// classifiers separated by " : " or "or".
	Definition = Grammar{
		Name:    "definition",
		Policy:  PolicyColonChain,
		pattern: definitionRegex,
	}
	// OrDefinition requires " :" after the term and accepts one classifier
	// slot with alternatives separated by "or".
	OrDefinition = Grammar{
		Name:    "or-definition",
		Policy:  PolicyOr,
		pattern: orDefinitionRegex,
	}
	// Any accepts a term followed by arbitrary text, which is kept as one
	// classifier.
	Any = Grammar{
		Name:    "any",
		Policy:  PolicySingle,
		pattern: anyRegex,
	}
	// Term accepts a bare term.
	Term = Grammar{
		Name:    "term",
		Policy:  PolicyNone,
		pattern: termRegex,
	}
	// Method accepts call signatures such as "get(key, default=None)".
	Method = Grammar{
		Name:      "method",
		Signature: true,
		pattern:   methodRegex,
	}
)

var builtin = []Grammar{Definition, OrDefinition, Any, Term, Method}

// Lookup returns the built-in [Grammar] with the given name.
func Lookup(name string) (Grammar, error) {
	for _, g := range builtin {
		if g.Name == name {
			return g, nil
		}
	}

	return Grammar{}, fmt.Errorf("%w: %q", ErrUnknownGrammar, name)
}

// Names returns the names of all built-in grammars.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for _, g := range builtin {
		names = append(names, g.Name)
	}

	slices.Sort(names)

	return names
}

// IsZero reports whether g is the zero [Grammar].
func (g Grammar) IsZero() bool {
	return g.pattern == nil
}

// Match reports whether line is an item header for this grammar. Lines
// starting with whitespace or ':' never match.
func (g Grammar) Match(line string) bool {
	if g.pattern == nil {
		return false
	}

	return g.pattern.MatchString(strings.TrimRight(line, " \t"))
}

// Parse parses an item block: the header line followed by the body lines.
// The body has its common indentation and trailing whitespace removed.
func (g Grammar) Parse(block []string) (Item, error) {
	if len(block) == 0 {
		return Item{}, fmt.Errorf("%w: empty block", ErrMalformedItem)
	}

	header := strings.TrimSpace(block[0])

	var (
		term        string
		classifiers []string
		err         error
	)

	if g.Signature {
		term, classifiers, err = splitSignature(header)
	} else {
		term, classifiers, err = g.Policy.split(header)
	}

	if err != nil {
		return Item{}, err
	}

	if term == "" {
		return Item{}, fmt.Errorf("%w: %q: empty term", ErrMalformedItem, header)
	}

	var definition []string
	if len(block) > 1 {
		definition = lines.TrimRight(lines.StripCommonIndent(block[1:]))
	}

	return New(term, classifiers, definition), nil
}

func (p Policy) split(header string) (string, []string, error) {
	switch p {
	case PolicyNone:
		return header, nil, nil

	case PolicySingle:
		if !strings.Contains(header, " :") {
			return strings.TrimSpace(strings.TrimSuffix(header, ":")), nil, nil
		}

		parts := headerRegex.Split(header, 2)
		term, rest := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

		if rest == "" {
			return term, nil, nil
		}

		return term, []string{rest}, nil

	case PolicyOr:
		term, rest, found := strings.Cut(header, " :")
		if !found {
			term, rest, _ = strings.Cut(header, ":")
		}

		rest = strings.TrimSpace(rest)
		if rest == "" {
			return strings.TrimSpace(term), nil, nil
		}

		alternatives, err := splitAlternatives(header, rest)
		if err != nil {
			return "", nil, err
		}

		return strings.TrimSpace(term), alternatives, nil

	case PolicyColonChain:
		components := colonRegex.Split(header, -1)
		for i, c := range components {
			components[i] = strings.TrimSpace(c)
		}

		// A trailing ':' (as in "term :") carries no classifier.
		for len(components) > 1 && components[len(components)-1] == "" {
			components = components[:len(components)-1]
		}

		var classifiers []string

		for _, c := range components[1:] {
			if c == "" {
				return "", nil, fmt.Errorf("%w: %q: empty classifier", ErrMalformedItem, header)
			}

			alternatives, err := splitAlternatives(header, c)
			if err != nil {
				return "", nil, err
			}

			classifiers = append(classifiers, alternatives...)
		}

		return components[0], classifiers, nil
	}

	return "", nil, fmt.Errorf("%w: unknown classifier policy %d", ErrMalformedItem, p)
}

// splitAlternatives splits s on the word "or". Every alternative must be
// non-empty.
func splitAlternatives(header, s string) ([]string, error) {
	s = strings.TrimSpace(s)

	if s == "or" || strings.HasPrefix(s, "or ") || strings.HasSuffix(s, " or") {
		return nil, fmt.Errorf("%w: %q: dangling 'or'", ErrMalformedItem, header)
	}

	parts := orRegex.Split(s, -1)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
		if parts[i] == "" {
			return nil, fmt.Errorf("%w: %q: empty alternative", ErrMalformedItem, header)
		}
	}

	return parts, nil
}

// splitSignature splits "name(args)" at the first '(' and the last ')'.
// Text after the signature, such as a return annotation, is dropped.
func splitSignature(header string) (string, []string, error) {
	open := strings.Index(header, "(")
	closing := strings.LastIndex(header, ")")

	if open <= 0 || closing < open {
		return "", nil, fmt.Errorf("%w: %q: not a call signature", ErrMalformedItem, header)
	}

	term := strings.TrimSpace(header[:open])
	args := strings.TrimSpace(header[open+1 : closing])

	return term, []string{args}, nil
}
