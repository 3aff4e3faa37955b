package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/f77sub/f77sub/config"
	"github.com/f77sub/f77sub/driver"
)

type options struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg *config.Config
}

// NewRootCommand builds the command tree. Running it without a subcommand starts the REPL.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "f77sub",
		Short: "Lexer and parser for a FORTRAN 77 subset",
		Long: `f77sub scans and parses a small FORTRAN 77 subset (assignments and
IF/THEN/ELSE/ENDIF blocks with arithmetic and relational expressions)
and shows the resulting syntax tree.

Without a subcommand it starts an interactive prompt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/f77sub/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(
		newParseCommand(opts),
		newTokensCommand(opts),
		newTestCommand(opts),
		newREPLCommand(opts),
	)

	return root
}

// Execute runs the command line and prints any error that was not already reported.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && !errors.As(err, new(reportedError)) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func (o *options) load() error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		o.cfg, err = config.Discover()
	}
	if err != nil {
		return err
	}
	if o.noColor {
		o.cfg.Output.Color = false
	}

	return nil
}

func (o *options) logger(w io.Writer) *slog.Logger {
	if !o.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (o *options) runner(cmd *cobra.Command) *driver.PassRunner {
	r := driver.NewPassRunner()
	r.SetLogger(o.logger(cmd.ErrOrStderr()))
	return r
}

// readSource reads the named file, or standard input when name is empty or "-".
func readSource(cmd *cobra.Command, args []string) (name, source string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return args[0], string(data), nil
}
