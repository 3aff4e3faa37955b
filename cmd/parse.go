package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f77sub/f77sub/config"
	"github.com/f77sub/f77sub/driver"
	"github.com/f77sub/f77sub/pretty"
	"github.com/f77sub/f77sub/viz"
)

func newParseCommand(opts *options) *cobra.Command {
	var (
		format string
		dotOut string
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a source file and print its syntax tree",
		Long: `Parse a source file (standard input when omitted or "-") and print
the syntax tree as an indented tree, an s-expression, a DOT graph or the token list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = opts.cfg.Output.Format
			}
			if !slices.Contains(config.Formats, format) {
				return fmt.Errorf("%w %q (want one of %s)", config.ErrUnknownFormat, format, strings.Join(config.Formats, ", "))
			}

			name, source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			runner := opts.runner(cmd)
			runner.AddPass(outputPass(cmd.OutOrStdout(), format))
			if dotOut != "" {
				runner.AddPass(dotFilePass(dotOut))
			}

			if _, err := runner.RunSource(source); err != nil {
				printDiagnostic(cmd.ErrOrStderr(), name, source, err, opts.cfg.Output.Color)
				return reportedError{err}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: "+strings.Join(config.Formats, ", "))
	cmd.Flags().StringVar(&dotOut, "dot-out", "", "also write the DOT graph to this file")

	return cmd
}

// outputPass writes the program in the given format.
func outputPass(w io.Writer, format string) driver.Pass {
	return driver.PassFunc(format, func(res *driver.Result) error {
		return render(w, res, format)
	})
}

func dotFilePass(path string) driver.Pass {
	return driver.PassFunc("dot-file", func(res *driver.Result) error {
		return os.WriteFile(path, []byte(viz.Render(res.Program)), 0o644)
	})
}

func render(w io.Writer, res *driver.Result, format string) error {
	var err error
	switch format {
	case config.FormatTree:
		_, err = io.WriteString(w, pretty.Print(res.Program))
	case config.FormatSexp:
		_, err = fmt.Fprintln(w, res.Program.String())
	case config.FormatDot:
		_, err = io.WriteString(w, viz.Render(res.Program))
	case config.FormatTokens:
		for _, tok := range res.Tokens {
			if _, err = fmt.Fprintln(w, tok.String()); err != nil {
				break
			}
		}
	default:
		err = fmt.Errorf("%w %q", config.ErrUnknownFormat, format)
	}
	return err
}
