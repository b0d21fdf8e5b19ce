package style_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/sectiondoc/docstring"
	"go.jacobcolvin.com/sectiondoc/item"
	"go.jacobcolvin.com/sectiondoc/render"
	"go.jacobcolvin.com/sectiondoc/stringtest"
	"go.jacobcolvin.com/sectiondoc/style"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    map[style.Kind]docstring.SectionMap
		wantErr error
	}{
		"minimal": {
			input: `
				name: minimal
				kinds: {}
			`,
			want: map[style.Kind]docstring.SectionMap{},
		},
		"all fields": {
			input: `
				name: custom
				kinds:
				  function:
				    Returns:
				      handler: item-list
				      renderer: definition
				      item: any
				  class:
				    Methods:
				      handler: table
			`,
			want: map[style.Kind]docstring.SectionMap{
				style.KindFunction: {
					"Returns": {
						Handler:  docstring.HandlerItemList,
						Renderer: render.KindDefinition,
						Grammar:  item.Any,
					},
				},
				style.KindClass: {
					"Methods": {Handler: docstring.HandlerTable},
				},
			},
		},
		"empty document": {
			input:   ``,
			wantErr: style.ErrInvalidStyleFile,
		},
		"not yaml": {
			input:   `name: [unclosed`,
			wantErr: style.ErrInvalidStyleFile,
		},
		"missing name": {
			input: `
				kinds: {}
			`,
			wantErr: style.ErrInvalidStyleFile,
		},
		"empty name": {
			input: `
				name: ""
				kinds: {}
			`,
			wantErr: style.ErrInvalidStyleFile,
		},
		"unknown top-level field": {
			input: `
				name: custom
				kinds: {}
				version: 2
			`,
			wantErr: style.ErrInvalidStyleFile,
		},
		"unknown kind": {
			input: `
				name: custom
				kinds:
				  lambda:
				    Returns:
				      handler: item-list
			`,
			wantErr: style.ErrInvalidStyleFile,
		},
		"unknown handler": {
			input: `
				name: custom
				kinds:
				  function:
				    Returns:
				      handler: summary
			`,
			wantErr: style.ErrInvalidStyleFile,
		},
		"unknown item grammar": {
			input: `
				name: custom
				kinds:
				  function:
				    Returns:
				      handler: item-list
				      item: google
			`,
			wantErr: style.ErrInvalidStyleFile,
		},
		"missing handler": {
			input: `
				name: custom
				kinds:
				  function:
				    Returns:
				      renderer: list-item
			`,
			wantErr: style.ErrInvalidStyleFile,
		},
		"incompatible renderer": {
			input: `
				name: custom
				kinds:
				  function:
				    Returns:
				      handler: item-list
				      renderer: table-row
			`,
			wantErr: docstring.ErrInvalidSection,
		},
		"grammar on notes": {
			input: `
				name: custom
				kinds:
				  function:
				    Notes:
				      handler: notes
				      item: term
			`,
			wantErr: docstring.ErrInvalidSection,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := style.Parse([]byte(stringtest.Input(tc.input)))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Sections)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	s, err := style.LoadFile(filepath.Join("testdata", "numpy.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "numpy", s.Name)
	assert.Equal(t, []style.Kind{style.KindClass, style.KindFunction}, s.Kinds())

	got, err := s.Render(style.KindFunction, stringtest.Lines(`
		Returns
		-------
		value : int : str
		    The value.
	`))
	require.NoError(t, err)
	assert.Equal(t, []string{":returns:", "    **value** (*int : str*) -- The value.", ""}, got)

	_, err = style.LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileInvalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	err := os.WriteFile(path, []byte("name: bad\nkinds:\n  function: 3\n"), 0o600)
	require.NoError(t, err)

	_, err = style.LoadFile(path)
	require.ErrorIs(t, err, style.ErrInvalidStyleFile)
	assert.ErrorContains(t, err, path)
}
