package utils_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/f77sub/f77sub/token"
	"github.com/f77sub/f77sub/utils"
)

type codedError struct{}

func (codedError) Error() string {
	return "coded"
}

func (codedError) Code() string {
	return "test.coded"
}

type positionedError struct{}

func (positionedError) Error() string {
	return "positioned"
}

func (positionedError) Position() (int, int) {
	return 4, 2
}

func TestErrorAt(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	testcases := []struct {
		where    token.Token
		expected string
	}{
		{token.Token{Kind: token.IDENTIFIER, Lexeme: "A", Line: 2, Column: 3}, "at 2:3: `A`, boom"},
		{token.Token{Kind: token.EOF, Line: 5, Column: 1}, "at end (5:1): boom"},
	}

	for _, testcase := range testcases {
		err := utils.ErrorAt{Where: testcase.where, Err: base}
		if diff := cmp.Diff(testcase.expected, err.Error()); diff != "" {
			t.Errorf("Error mismatch (-want +got):\n%s", diff)
		}
		if !errors.Is(err, base) {
			t.Errorf("%v does not unwrap to its cause", err)
		}
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("parse: %w", utils.ErrorAt{Err: codedError{}})
	if code := utils.CodeOf(wrapped); code != "test.coded" {
		t.Errorf("CodeOf(%v) = %q, want test.coded", wrapped, code)
	}
	if code := utils.CodeOf(errors.New("plain")); code != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", code)
	}
}

func TestPositionOf(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		err    error
		line   int
		column int
		ok     bool
	}{
		{fmt.Errorf("parse: %w", utils.ErrorAt{Where: token.Token{Line: 3, Column: 7}, Err: codedError{}}), 3, 7, true},
		{fmt.Errorf("lex: %w", positionedError{}), 4, 2, true},
		{errors.New("plain"), 0, 0, false},
	}

	for _, testcase := range testcases {
		line, column, ok := utils.PositionOf(testcase.err)
		if line != testcase.line || column != testcase.column || ok != testcase.ok {
			t.Errorf("PositionOf(%v) = %d, %d, %v, want %d, %d, %v",
				testcase.err, line, column, ok, testcase.line, testcase.column, testcase.ok)
		}
	}
}

func TestReadTestData(t *testing.T) {
	t.Parallel()

	data := utils.ReadTestData([]byte(`
- label: enabled
  enable: true
  input: A = 1
  expected:
    parser: (program (assign A (number 1)))
- label: disabled
  enable: false
  input: A = 2
`))
	if len(data) != 1 || data[0].Label != "enabled" || data[0].Input != "A = 1" {
		t.Errorf("ReadTestData = %+v, want only the enabled case", data)
	}
}

func TestFindSourceFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.f", "a.FOR", "c.f77", "notes.txt", "main.go", "README.md", filepath.Join("sub", "d.f")} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := utils.FindSourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		filepath.Join(dir, "a.FOR"),
		filepath.Join(dir, "b.f"),
		filepath.Join(dir, "c.f77"),
		filepath.Join(dir, "notes.txt"),
		filepath.Join(dir, "sub", "d.f"),
	}
	if diff := cmp.Diff(expected, files); diff != "" {
		t.Errorf("FindSourceFiles mismatch (-want +got):\n%s", diff)
	}

	if _, err := utils.FindSourceFiles(filepath.Join(dir, "missing")); err == nil {
		t.Error("FindSourceFiles of a missing directory succeeded")
	}
}
