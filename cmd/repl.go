package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/f77sub/f77sub/token"
	"github.com/f77sub/f77sub/utils"
)

const continuationPrompt = ".. "

func newREPLCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive prompt",
		Long: `Start an interactive prompt. Each complete program is parsed and printed
in the configured format. Input that ends in the middle of a statement, such as
an IF block without its ENDIF, is continued on the next line; an empty line
submits it as is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}
}

func runREPL(cmd *cobra.Command, opts *options) error {
	cfg := opts.cfg
	history := cfg.REPL.History

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := cfg.EnsureHistoryDir(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	out := cmd.OutOrStdout()
	var pending []string
	for {
		prompt := cfg.REPL.Prompt
		if len(pending) > 0 {
			prompt = continuationPrompt
		}

		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			pending = nil
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		submit := len(pending) > 0 && strings.TrimSpace(input) == ""
		pending = append(pending, input)
		source := strings.Join(pending, "\n")
		if strings.TrimSpace(source) == "" {
			pending = nil
			continue
		}

		runner := opts.runner(cmd)
		runner.AddPass(outputPass(out, cfg.Output.Format))
		if _, err := runner.RunSource(source); err != nil {
			if !submit && incomplete(err) {
				continue
			}
			printDiagnostic(cmd.ErrOrStderr(), "<repl>", source, err, cfg.Output.Color)
		}
		pending = nil
	}
}

// incomplete reports whether err was caused by the input ending too early,
// in which case more lines may complete the program.
func incomplete(err error) bool {
	var at utils.ErrorAt
	return errors.As(err, &at) && at.Where.Kind == token.EOF
}
