package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f77sub/f77sub/lexer"
)

func newTokensCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			tokens, err := lexer.Lex(source)
			if err != nil {
				printDiagnostic(cmd.ErrOrStderr(), name, source, err, opts.cfg.Output.Color)
				return reportedError{err}
			}
			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), tok.String())
			}
			return nil
		},
	}
}
