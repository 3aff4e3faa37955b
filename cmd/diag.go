package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/f77sub/f77sub/utils"
)

// reportedError marks an error whose diagnostic has already been printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string {
	return e.err.Error()
}

func (e reportedError) Unwrap() error {
	return e.err
}

var (
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	caretStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func paint(style lipgloss.Style, color bool, s string) string {
	if !color {
		return s
	}
	return style.Render(s)
}

// printDiagnostic writes err with a header naming its code and, when the
// error carries a position, the offending source line with a caret under it.
func printDiagnostic(w io.Writer, name, source string, err error, color bool) {
	header := "error"
	if code := utils.CodeOf(err); code != "" {
		header += "[" + code + "]"
	}
	fmt.Fprintf(w, "%s: %s: %v\n", paint(errorStyle, color, header), name, err)

	line, column, ok := utils.PositionOf(err)
	if !ok {
		return
	}
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return
	}
	text := strings.TrimRight(lines[line-1], "\r")
	gutter := fmt.Sprintf("%4d | ", line)
	fmt.Fprintf(w, "%s%s\n", paint(gutterStyle, color, gutter), text)
	fmt.Fprintf(w, "%s%s%s\n",
		paint(gutterStyle, color, strings.Repeat(" ", len(gutter)-2)+"| "),
		caretPadding(text, column),
		paint(caretStyle, color, "^"))
}

// caretPadding returns the whitespace that moves a caret under the given
// 1-based rune column of text, keeping tabs so the caret lines up.
func caretPadding(text string, column int) string {
	var b strings.Builder
	i := 1
	for _, r := range text {
		if i >= column {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		i++
	}
	for ; i < column; i++ {
		b.WriteRune(' ')
	}
	return b.String()
}
