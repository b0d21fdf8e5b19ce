package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/sectiondoc/profile"
)

func TestConfigDisabledByDefault(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)
	require.NoError(t, flags.Parse(nil))

	assert.Empty(t, cfg.CPU)
	assert.Empty(t, cfg.Heap)
	assert.Empty(t, cfg.Block)
	assert.Empty(t, cfg.Mutex)

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
}

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	err := flags.Parse([]string{
		"--cpu-profile=cpu.prof",
		"--heap-profile=heap.prof",
		"--block-profile=block.prof",
		"--mutex-profile=mutex.prof",
	})
	require.NoError(t, err)

	assert.Equal(t, "cpu.prof", cfg.CPU)
	assert.Equal(t, "heap.prof", cfg.Heap)
	assert.Equal(t, "block.prof", cfg.Block)
	assert.Equal(t, "mutex.prof", cfg.Mutex)

	for _, name := range []string{"cpu-profile", "heap-profile", "block-profile", "mutex-profile"} {
		f := flags.Lookup(name)
		require.NotNil(t, f, name)
		assert.True(t, f.Hidden, name)
	}
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	fn, ok := cmd.GetFlagCompletionFunc("heap-profile")
	require.True(t, ok)

	values, directive := fn(cmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)
	assert.Equal(t, []string{"prof"}, values)
}

// Not parallel: CPU profiling is process-wide.
func TestProfilerWritesSnapshots(t *testing.T) {
	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.Heap = filepath.Join(dir, "heap.prof")
	cfg.Mutex = filepath.Join(dir, "mutex.prof")

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())

	for _, path := range []string{cfg.Heap, cfg.Mutex} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestProfilerBadPath(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	cfg.Heap = filepath.Join(t.TempDir(), "missing", "heap.prof")

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.ErrorContains(t, p.Stop(), "create heap profile")
}
