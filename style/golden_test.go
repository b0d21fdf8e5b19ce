package style_test

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/sectiondoc/style"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		style string
		kind  style.Kind
	}{
		"default_function": {style: style.NameDefault, kind: style.KindFunction},
		"default_class":    {style: style.NameDefault, kind: style.KindClass},
		"legacy_function":  {style: style.NameLegacy, kind: style.KindFunction},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := style.Builtin(tc.style)
			require.NoError(t, err)

			data, err := os.ReadFile(filepath.Join("testdata", name+".txt"))
			require.NoError(t, err)

			input := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

			got, err := s.Render(tc.kind, input)
			require.NoError(t, err)

			assertGolden(t, filepath.Join("testdata", name+".golden"), strings.Join(got, "\n")+"\n")
		})
	}
}

func TestSchemaGolden(t *testing.T) {
	t.Parallel()

	got, err := json.MarshalIndent(style.Schema(), "", "  ")
	require.NoError(t, err)

	path := filepath.Join("testdata", "schema.json")

	if *update {
		err := os.WriteFile(path, append(got, '\n'), 0o600)
		require.NoError(t, err)

		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func assertGolden(t *testing.T, path, got string) {
	t.Helper()

	if *update {
		err := os.WriteFile(path, []byte(got), 0o600)
		require.NoError(t, err)

		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(want), got)
}
