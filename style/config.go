package style

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for style configuration.
type Flags struct {
	Style     string
	StyleFile string
	Workers   string
}

// Config holds CLI flag values for style configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewStyle] to create a [Style].
type Config struct {
	Flags     Flags
	Style     string
	StyleFile string
	Workers   int
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Style:     "style",
		StyleFile: "style-file",
		Workers:   "workers",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds style flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Style, c.Flags.Style, "s", NameDefault,
		fmt.Sprintf("built-in style (one of: %v)", GetAllBuiltinStrings()))
	flags.StringVar(&c.StyleFile, c.Flags.StyleFile, "",
		"path to a YAML style file; overrides --"+c.Flags.Style)
	flags.IntVarP(&c.Workers, c.Flags.Workers, "j", runtime.GOMAXPROCS(0),
		"maximum number of files rendered concurrently")
}

// RegisterCompletions registers shell completions for style flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Style,
		cobra.FixedCompletions(GetAllBuiltinStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Style, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.StyleFile,
		cobra.FixedCompletions([]string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.StyleFile, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Workers, cobra.NoFileCompletions)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Workers, err)
	}

	return nil
}

// NewStyle returns the [Style] selected by this [Config]. A style file takes
// precedence over a built-in style name.
func (c *Config) NewStyle() (*Style, error) {
	if c.StyleFile != "" {
		return LoadFile(c.StyleFile)
	}

	return Builtin(c.Style)
}
