package log

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags names the logging flags registered by [Config.RegisterFlags].
type Flags struct {
	Level   string
	Format  string
	Quiet   string
	Verbose string
}

// Config holds the values of the logging flags.
//
// Quiet and Verbose are shortcuts for the error and debug levels. Either one
// overrides Level, and setting both is an error.
type Config struct {
	Flags   Flags
	Level   string
	Format  string
	Quiet   bool
	Verbose bool
}

// NewConfig returns a [Config] that logs at info level in the text format.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Level:   "log-level",
			Format:  "log-format",
			Quiet:   "quiet",
			Verbose: "verbose",
		},
		Level:  string(LevelInfo),
		Format: string(FormatText),
	}
}

// RegisterFlags adds the logging flags to flags, using the current values
// of c as defaults.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, c.Format,
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
	flags.BoolVarP(&c.Quiet, c.Flags.Quiet, "q", c.Quiet, "only log errors")
	flags.BoolVar(&c.Verbose, c.Flags.Verbose, c.Verbose, "log debug messages")
}

// RegisterCompletions registers shell completions for the level and format
// flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	completions := map[string][]string{
		c.Flags.Level:  GetAllLevelStrings(),
		c.Flags.Format: GetAllFormatStrings(),
	}

	for name, values := range completions {
		err := cmd.RegisterFlagCompletionFunc(name,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("register %s completion: %w", name, err)
		}
	}

	return nil
}

// SelectedLevel returns the level chosen by the flags.
func (c *Config) SelectedLevel() (Level, error) {
	switch {
	case c.Quiet && c.Verbose:
		return "", fmt.Errorf("%w: --%s cannot be combined with --%s",
			ErrInvalidArgument, c.Flags.Quiet, c.Flags.Verbose)
	case c.Quiet:
		return LevelError, nil
	case c.Verbose:
		return LevelDebug, nil
	}

	lvl, err := ParseLevel(c.Level)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return lvl, nil
}

// NewHandler returns a [Handler] writing to w at the selected level and in
// the configured format.
func (c *Config) NewHandler(w io.Writer) (Handler, error) {
	lvl, err := c.SelectedLevel()
	if err != nil {
		return nil, err
	}

	f, err := ParseFormat(c.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, f), nil
}
