package driver_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/f77sub/f77sub/driver"
	"github.com/f77sub/f77sub/lexer"
	"github.com/f77sub/f77sub/parser"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	res, err := driver.Analyze("A = 1\nB = A + 2\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) != 9 {
		t.Errorf("got %d tokens, want 9", len(res.Tokens))
	}
	if diff := cmp.Diff("(program (assign A (number 1)) (assign B (binop + (var A) (number 2))))", res.Program.String()); diff != "" {
		t.Errorf("Analyze mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	t.Parallel()

	_, err := driver.Analyze("A = $")
	var lexErr *lexer.UnexpectedCharacterError
	if !errors.As(err, &lexErr) || !strings.HasPrefix(err.Error(), "lex: ") {
		t.Errorf("Analyze = %v, want a lexical error", err)
	}

	_, err = driver.Analyze("A = (1")
	var parseErr *parser.UnexpectedTokenError
	if !errors.As(err, &parseErr) || !strings.HasPrefix(err.Error(), "parse: ") {
		t.Errorf("Analyze = %v, want a syntax error", err)
	}
}

func TestPassOrder(t *testing.T) {
	t.Parallel()

	var order []string
	record := func(name string) driver.Pass {
		return driver.PassFunc(name, func(*driver.Result) error {
			order = append(order, name)
			return nil
		})
	}

	runner := driver.NewPassRunner()
	runner.AddPass(record("first"))
	runner.AddPass(record("second"))
	runner.AddPass(record("third"))
	if _, err := runner.RunSource("A = 1"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"first", "second", "third"}, order); diff != "" {
		t.Errorf("pass order mismatch (-want +got):\n%s", diff)
	}
}

func TestFailingPass(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	ran := false
	runner := driver.NewPassRunner()
	runner.AddPass(driver.PassFunc("explode", func(*driver.Result) error {
		return boom
	}))
	runner.AddPass(driver.PassFunc("after", func(*driver.Result) error {
		ran = true
		return nil
	}))

	res, err := runner.RunSource("A = 1")
	if !errors.Is(err, boom) || err.Error() != "pass explode: boom" {
		t.Errorf("RunSource = %v, want the pass error", err)
	}
	if res == nil {
		t.Error("RunSource dropped the result of a successful analysis")
	}
	if ran {
		t.Error("a pass ran after a failing one")
	}
}

func TestPassesSkippedOnSyntaxError(t *testing.T) {
	t.Parallel()

	ran := false
	runner := driver.NewPassRunner()
	runner.AddPass(driver.PassFunc("never", func(*driver.Result) error {
		ran = true
		return nil
	}))
	if _, err := runner.RunSource("IF"); err == nil {
		t.Error("RunSource succeeded on invalid input")
	}
	if ran {
		t.Error("a pass ran on invalid input")
	}
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	runner := driver.NewPassRunner()
	runner.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	runner.AddPass(driver.PassFunc("noop", func(*driver.Result) error {
		return nil
	}))
	if _, err := runner.RunSource("A = 1"); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"analyzed source", "tokens=4", "statements=1", "pass=noop"} {
		if !strings.Contains(out, want) {
			t.Errorf("log does not contain %q:\n%s", want, out)
		}
	}
}

func TestRunDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"good.f":    "A = 1\n",
		"bad.for":   "A = = 1\n",
		"empty.txt": "! nothing here\n",
		"skip.md":   "this is not a program",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	passes := 0
	runner := driver.NewPassRunner()
	runner.AddPass(driver.PassFunc("count", func(*driver.Result) error {
		passes++
		return nil
	}))
	reports, err := runner.RunDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	var ok []bool
	for _, report := range reports {
		names = append(names, filepath.Base(report.Path))
		ok = append(ok, report.OK())
	}
	if diff := cmp.Diff([]string{"bad.for", "empty.txt", "good.f"}, names); diff != "" {
		t.Errorf("reported files mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{false, true, true}, ok); diff != "" {
		t.Errorf("report status mismatch (-want +got):\n%s", diff)
	}
	if reports[0].Result != nil {
		t.Error("failing report carries a result")
	}
	if passes != 2 {
		t.Errorf("passes ran %d times, want 2", passes)
	}
}

func TestRunDirMissing(t *testing.T) {
	t.Parallel()

	if _, err := driver.NewPassRunner().RunDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("RunDir of a missing directory succeeded")
	}
}

func TestRunFileMissing(t *testing.T) {
	t.Parallel()

	report := driver.NewPassRunner().RunFile(filepath.Join(t.TempDir(), "missing.f"))
	if report.OK() || !errors.Is(report.Err, os.ErrNotExist) {
		t.Errorf("RunFile of a missing file = %v, want ErrNotExist", report.Err)
	}
}
