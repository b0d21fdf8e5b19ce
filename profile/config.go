package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration.
type Flags struct {
	CPU   string
	Heap  string
	Block string
	Mutex string
}

// Config holds the output paths of the profiles to record. An empty path
// disables the profile, so a zero-value Config records nothing.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewProfiler] to create a [Profiler].
type Config struct {
	Flags Flags
	CPU   string
	Heap  string
	Block string
	Mutex string
}

// NewConfig creates a new [Config] with default flag names and all profiles
// disabled.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			CPU:   "cpu-profile",
			Heap:  "heap-profile",
			Block: "block-profile",
			Mutex: "mutex-profile",
		},
	}
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet]. The
// flags are hidden from help output.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPU, c.Flags.CPU, "", "write a CPU profile to file")
	flags.StringVar(&c.Heap, c.Flags.Heap, "", "write a heap profile to file")
	flags.StringVar(&c.Block, c.Flags.Block, "", "write a profile of blocking on worker synchronization to file")
	flags.StringVar(&c.Mutex, c.Flags.Mutex, "", "write a mutex contention profile to file")

	for _, name := range []string{c.Flags.CPU, c.Flags.Heap, c.Flags.Block, c.Flags.Mutex} {
		must(flags.MarkHidden(name))
	}
}

// RegisterCompletions registers shell completions for profile flags on cmd.
// Profiles are written as gzipped protobuf, conventionally named *.prof.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	ext := cobra.FixedCompletions([]string{"prof"}, cobra.ShellCompDirectiveFilterFileExt)

	for _, name := range []string{c.Flags.CPU, c.Flags.Heap, c.Flags.Block, c.Flags.Mutex} {
		err := cmd.RegisterFlagCompletionFunc(name, ext)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// NewProfiler creates a new [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{config: *c}
}
