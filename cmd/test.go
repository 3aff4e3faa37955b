package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f77sub/f77sub/pretty"
)

func newTestCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "test [dir]",
		Short: "Analyze every source file in a directory",
		Long: `Analyze every .f, .for, .f77 and .txt file under dir (the current
directory when omitted) and report, per file, either the syntax tree or the error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			reports, err := opts.runner(cmd).RunDir(dir)
			if err != nil {
				return err
			}

			color := opts.cfg.Output.Color
			out := cmd.OutOrStdout()
			failed := 0
			for _, report := range reports {
				fmt.Fprintf(out, "\nTesting: %s\n", filepath.Base(report.Path))
				if !report.OK() {
					failed++
					fmt.Fprintf(out, "%s %v\n", paint(errorStyle, color, "Error:"), report.Err)
					continue
				}
				fmt.Fprintln(out, paint(okStyle, color, "OK"))
				fmt.Fprint(out, pretty.Print(report.Result.Program))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(reports))
			}
			return nil
		},
	}
}
