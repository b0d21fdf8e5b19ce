// Command sectiondoc rewrites the sections of numpydoc-style documentation
// comments as reStructuredText.
//
// # Usage
//
//	sectiondoc [flags] <file|-> ...
//	sectiondoc schema
//
// Each argument is a text file holding one documentation comment, or "-" for
// standard input. The rewritten comments are printed to standard output
// unless one of the modes below is selected.
//
// # Flags
//
//	-k, --kind KIND        kind of the documented entity (default "function")
//	-s, --style NAME       built-in style (default "default")
//	    --style-file PATH  YAML style file, overrides --style
//	-j, --workers N        number of files rendered concurrently
//	-d, --diff             print a diff of the changes
//	-l, --list             print the paths of files that would change
//	-w, --write            write the result back to the files
//	    --log-level LEVEL  error, warn, info or debug
//	    --log-format FMT   json, logfmt or text
//	-q, --quiet            only log errors
//	    --verbose          log debug messages
//
// A file that cannot be rewritten is reported on standard error and left
// untouched; the other files are still processed and the exit status is 1.
//
// # Style files
//
// The schema subcommand prints the JSON Schema that style files are
// validated against. It can be used for editor completion:
//
//	# yaml-language-server: $schema=sectiondoc-style.json
//	name: numpy
//	kinds:
//	  function:
//	    Parameters:
//	      handler: items
//	      renderer: argument
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/sectiondoc/log"
	"go.jacobcolvin.com/sectiondoc/profile"
	"go.jacobcolvin.com/sectiondoc/style"
	"go.jacobcolvin.com/sectiondoc/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// execute runs the command with args and returns the process exit status.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		// Per-file failures were already reported.
		if !errors.Is(err, errRenderFailed) {
			fmt.Fprintf(stderr, "%v\n", err)
		}

		return 1
	}

	return 0
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		styleCfg: style.NewConfig(),
	}

	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "sectiondoc [flags] <file|-> ...",
		Short: "Rewrite docstring sections as reStructuredText",
		Long: `sectiondoc rewrites the sections of numpydoc-style documentation comments,
such as Parameters, Returns and Methods, as reStructuredText field lists,
directives and tables. Unknown sections become rubrics.`,
		Version:       version.Short(),
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := profCfg.NewProfiler()

			err := p.Start()
			if err != nil {
				return err
			}

			return errors.Join(a.run(cmd.Context(), args), p.Stop())
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate(version.Info())

	flags := rootCmd.Flags()
	flags.StringVarP(&a.kind, "kind", "k", string(style.KindFunction),
		fmt.Sprintf("kind of the documented entity, one of: %s", style.GetAllKindStrings()))
	flags.BoolVarP(&a.diff, "diff", "d", false, "print a diff of the changes")
	flags.BoolVarP(&a.list, "list", "l", false, "print the paths of files that would change")
	flags.BoolVarP(&a.write, "write", "w", false, "write the result back to the files")

	a.styleCfg.RegisterFlags(flags)
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(flags)

	rootCmd.AddCommand(newSchemaCommand(stdout))

	for _, err := range []error{
		rootCmd.RegisterFlagCompletionFunc("kind",
			cobra.FixedCompletions(style.GetAllKindStrings(), cobra.ShellCompDirectiveNoFileComp)),
		a.styleCfg.RegisterCompletions(rootCmd),
		logCfg.RegisterCompletions(rootCmd),
		profCfg.RegisterCompletions(rootCmd),
	} {
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	return rootCmd
}

func newSchemaCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of style files",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(style.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			_, err = fmt.Fprintf(stdout, "%s\n", out)
			if err != nil {
				return fmt.Errorf("write schema: %w", err)
			}

			return nil
		},
	}
}
