package item_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/sectiondoc/item"
)

func TestMode(t *testing.T) {
	t.Parallel()

	classifierSets := map[string][]string{
		"none": nil,
		"one": {"int"},
		"two": {"int", "float"},
	}
	definitions := map[string][]string{
		"sentinel":   {""},
		"one line":   {"text"},
		"paragraphs": {"text", "", "more"},
	}

	for cname, classifiers := range classifierSets {
		for dname, definition := range definitions {
			t.Run(fmt.Sprintf("%s classifiers, %s definition", cname, dname), func(t *testing.T) {
				t.Parallel()

				it := item.Item{Term: "x", Classifiers: classifiers, Definition: definition}

				var want item.Mode

				switch {
				case len(classifiers) == 0 && dname == "sentinel":
					want = item.ModeOnlyTerm
				case len(classifiers) == 0:
					want = item.ModeNoClassifiers
				case dname == "sentinel":
					want = item.ModeNoDefinition
				default:
					want = item.ModeFull
				}

				assert.Equal(t, want, it.Mode())

				// The term has no influence on the mode.
				it.Term = "something_else"
				assert.Equal(t, want, it.Mode())
			})
		}
	}
}

func TestNewDefinitionNotShared(t *testing.T) {
	t.Parallel()

	first := item.New("first", nil, nil)
	second := item.New("second", nil, nil)
	require.Equal(t, []string{""}, first.Definition)

	first.Definition[0] = "Changed."
	assert.Equal(t, item.ModeNoClassifiers, first.Mode())
	assert.Equal(t, []string{""}, second.Definition)
	assert.Equal(t, item.ModeOnlyTerm, second.Mode())
}

func TestModeIsRecomputed(t *testing.T) {
	t.Parallel()

	it := item.New("indent", nil, nil)
	assert.Equal(t, item.ModeOnlyTerm, it.Mode())

	withType := it
	withType.Classifiers = []string{"int"}
	assert.Equal(t, item.ModeNoDefinition, withType.Mode())
	assert.Equal(t, item.ModeOnlyTerm, it.Mode())

	withType.Definition = []string{"The indent."}
	assert.Equal(t, item.ModeFull, withType.Mode())
}

func TestSignature(t *testing.T) {
	t.Parallel()

	it := item.New("function", []string{"arg1", "arg2"}, nil)
	assert.Equal(t, "function(arg1, arg2)", it.Signature())

	it = item.New("get_field", []string{""}, nil)
	assert.Equal(t, "get_field()", it.Signature())
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		grammar item.Grammar
		line    string
		want    bool
	}{
		"definition bare term":         {grammar: item.Definition, line: "term", want: true},
		"definition trailing space":    {grammar: item.Definition, line: "term ", want: true},
		"definition empty classifier":  {grammar: item.Definition, line: "term :", want: true},
		"definition classifier":        {grammar: item.Definition, line: "term : classifier", want: true},
		"definition colon chain":       {grammar: item.Definition, line: "term : int : optional", want: true},
		"definition leading colon":     {grammar: item.Definition, line: ":term : classifier", want: false},
		"definition trailing colon":    {grammar: item.Definition, line: "term : classifier:", want: false},
		"definition dotted":            {grammar: item.Definition, line: "component : class.component.instance", want: true},
		"definition trait":             {grammar: item.Definition, line: "properies : Dict(Str, Any)", want: true},
		"definition or":                {grammar: item.Definition, line: "item : ModelIndex or None", want: true},
		"definition stars":             {grammar: item.Definition, line: "**kwargs :", want: true},
		"definition sentence":          {grammar: item.Definition, line: "This is a sentence.", want: false},
		"definition indented":          {grammar: item.Definition, line: "    term", want: false},
		"definition body with colon":   {grammar: item.Definition, line: "Note: this is text", want: false},
		"or-definition bare term":      {grammar: item.OrDefinition, line: "term", want: false},
		"or-definition empty":          {grammar: item.OrDefinition, line: "term :", want: true},
		"or-definition classifier":     {grammar: item.OrDefinition, line: "term : classifier", want: true},
		"or-definition or":             {grammar: item.OrDefinition, line: "item : ModelIndex or None", want: true},
		"or-definition trailing colon": {grammar: item.OrDefinition, line: "term : classifier:", want: false},
		"any free text":                {grammar: item.Any, line: "result : list of str", want: true},
		"any no colon":                 {grammar: item.Any, line: "result", want: true},
		"any leading colon":            {grammar: item.Any, line: ":term", want: false},
		"term bare":                    {grammar: item.Term, line: "ValueError", want: true},
		"term with classifier":         {grammar: item.Term, line: "ValueError : x", want: false},
		"method empty":                 {grammar: item.Method, line: "term()", want: true},
		"method args":                  {grammar: item.Method, line: "term(*args, my_keyword=None)", want: true},
		"method bare term":             {grammar: item.Method, line: "term", want: false},
		"method classifier":            {grammar: item.Method, line: "term : *args", want: false},
		"zero grammar":                 {grammar: item.Grammar{}, line: "term", want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.grammar.Match(tc.line))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		grammar item.Grammar
		block   []string
		want    item.Item
	}{
		"term only": {
			grammar: item.Definition,
			block:   []string{"term"},
			want:    item.Item{Term: "term", Definition: []string{""}},
		},
		"term with definition": {
			grammar: item.Definition,
			block:   []string{"term", "    Definition."},
			want:    item.Item{Term: "term", Definition: []string{"Definition."}},
		},
		"paragraphs": {
			grammar: item.Definition,
			block: []string{
				"term", "    Definition, paragraph 1.",
				"", "    Definition, paragraph 2.",
			},
			want: item.Item{
				Term:       "term",
				Definition: []string{"Definition, paragraph 1.", "", "Definition, paragraph 2."},
			},
		},
		"empty classifier": {
			grammar: item.Definition,
			block:   []string{"term :", "    Definition."},
			want:    item.Item{Term: "term", Definition: []string{"Definition."}},
		},
		"classifier": {
			grammar: item.Definition,
			block:   []string{"term : classifier", "    Definition."},
			want:    item.Item{Term: "term", Classifiers: []string{"classifier"}, Definition: []string{"Definition."}},
		},
		"or classifiers": {
			grammar: item.Definition,
			block:   []string{"term : classifier or classifier", "    Definition."},
			want: item.Item{
				Term:        "term",
				Classifiers: []string{"classifier", "classifier"},
				Definition:  []string{"Definition."},
			},
		},
		"colon chain": {
			grammar: item.Definition,
			block:   []string{"term : int : optional"},
			want:    item.Item{Term: "term", Classifiers: []string{"int", "optional"}, Definition: []string{""}},
		},
		"nested body": {
			grammar: item.Definition,
			block:   []string{"term : classifier", "    Block.", "        Definition.   "},
			want: item.Item{
				Term:        "term",
				Classifiers: []string{"classifier"},
				Definition:  []string{"Block.", "    Definition."},
			},
		},
		"colon inside signature classifier": {
			grammar: item.Definition,
			block:   []string{"callback : Callable(a: int)"},
			want:    item.Item{Term: "callback", Classifiers: []string{"Callable(a: int)"}, Definition: []string{""}},
		},
		"stars kept in term": {
			grammar: item.Definition,
			block:   []string{"**kwargs :", "    Keyword arguments."},
			want:    item.Item{Term: "**kwargs", Definition: []string{"Keyword arguments."}},
		},
		"or-definition": {
			grammar: item.OrDefinition,
			block:   []string{"item : ModelIndex or None", "    The index."},
			want: item.Item{
				Term:        "item",
				Classifiers: []string{"ModelIndex", "None"},
				Definition:  []string{"The index."},
			},
		},
		"any keeps or as data": {
			grammar: item.Any,
			block:   []string{"result : A or B", "    Value."},
			want:    item.Item{Term: "result", Classifiers: []string{"A or B"}, Definition: []string{"Value."}},
		},
		"any without colon": {
			grammar: item.Any,
			block:   []string{"result list of str"},
			want:    item.Item{Term: "result list of str", Definition: []string{""}},
		},
		"any splits at first colon": {
			grammar: item.Any,
			block:   []string{"mapping : dict : str to int", "    Lookup."},
			want: item.Item{
				Term:        "mapping",
				Classifiers: []string{"dict : str to int"},
				Definition:  []string{"Lookup."},
			},
		},
		"any trailing colon": {
			grammar: item.Any,
			block:   []string{"term:", "    Definition."},
			want:    item.Item{Term: "term", Definition: []string{"Definition."}},
		},
		"term": {
			grammar: item.Term,
			block:   []string{"ValueError", "    When it fails."},
			want:    item.Item{Term: "ValueError", Definition: []string{"When it fails."}},
		},
		"method": {
			grammar: item.Method,
			block:   []string{"method(arguments)", "    Definition in a single line"},
			want: item.Item{
				Term:        "method",
				Classifiers: []string{"arguments"},
				Definition:  []string{"Definition in a single line"},
			},
		},
		"method without arguments": {
			grammar: item.Method,
			block:   []string{"get_field()"},
			want:    item.Item{Term: "get_field", Classifiers: []string{""}, Definition: []string{""}},
		},
		"method return annotation": {
			grammar: item.Method,
			block:   []string{"close() -> None", "    Close it."},
			want:    item.Item{Term: "close", Classifiers: []string{""}, Definition: []string{"Close it."}},
		},
		"method nested parentheses": {
			grammar: item.Method,
			block:   []string{"extract(fields=dict(a=1))  "},
			want:    item.Item{Term: "extract", Classifiers: []string{"fields=dict(a=1)"}, Definition: []string{""}},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.grammar.Parse(tc.block)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		grammar item.Grammar
		block   []string
	}{
		"empty block":           {grammar: item.Definition, block: nil},
		"empty chain component": {grammar: item.Definition, block: []string{"x : a : : b"}},
		"dangling or":           {grammar: item.Definition, block: []string{"x : a or"}},
		"leading or":            {grammar: item.OrDefinition, block: []string{"x : or b"}},
		"missing method name":   {grammar: item.Method, block: []string{"(a)"}},
		"unbalanced signature":  {grammar: item.Method, block: []string{"method)a("}},
		"blank header":          {grammar: item.Any, block: []string{"   "}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := tc.grammar.Parse(tc.block)
			require.Error(t, err)
			require.ErrorIs(t, err, item.ErrMalformedItem)
		})
	}
}

func TestMalformedHeaderStillMatches(t *testing.T) {
	t.Parallel()

	// The recognizer accepts the header, but it cannot be decomposed.
	header := "x : a : : b"
	assert.True(t, item.Definition.Match(header))

	_, err := item.Definition.Parse([]string{header})
	require.ErrorIs(t, err, item.ErrMalformedItem)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range item.Names() {
		g, err := item.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, g.Name)
		assert.False(t, g.IsZero())
	}

	_, err := item.Lookup("numpy")
	require.ErrorIs(t, err, item.ErrUnknownGrammar)

	assert.Equal(t, []string{"any", "definition", "method", "or-definition", "term"}, item.Names())
}
