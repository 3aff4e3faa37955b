package pretty_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"

	"github.com/f77sub/f77sub/ast"
	"github.com/f77sub/f77sub/driver"
	"github.com/f77sub/f77sub/pretty"
	"github.com/f77sub/f77sub/utils"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	testfiles, err := utils.FindSourceFiles("../testdata/programs")
	if err != nil {
		t.Fatalf("failed to find test files: %v", err)
	}

	g := goldie.New(t, goldie.WithFixtureDir("../testdata/golden"))
	for _, testfile := range testfiles {
		source, err := os.ReadFile(testfile)
		if err != nil {
			t.Fatalf("failed to read %s: %v", testfile, err)
		}

		res, err := driver.Analyze(string(source))
		if err != nil {
			t.Errorf("%s returned error: %v", testfile, err)
			continue
		}

		g.Assert(t, filepath.Base(testfile)+".tree", []byte(pretty.Print(res.Program)))
	}
}

func TestPrint(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input    string
		expected string
	}{
		{
			input: "A = 2 + 3 * 4",
			expected: `Program
  Assign(A)
    BinOp(+)
      Number(2)
      BinOp(*)
        Number(3)
        Number(4)
`,
		},
		{
			input: "IF (X < 1.0) THEN ENDIF",
			expected: `Program
  If
   Cond:
      BinOp(<)
        Var(X)
        Number(1.0)
   Then:
`,
		},
		{
			input:    "",
			expected: "Program\n",
		},
	}

	for _, testcase := range testcases {
		res, err := driver.Analyze(testcase.input)
		if err != nil {
			t.Fatalf("Analyze(%q) returned error: %v", testcase.input, err)
		}
		if diff := cmp.Diff(testcase.expected, pretty.Print(res.Program)); diff != "" {
			t.Errorf("Print(%q) mismatch (-want +got):\n%s", testcase.input, diff)
		}
	}
}

func TestPrintSubtree(t *testing.T) {
	t.Parallel()

	res, err := driver.Analyze("B = (A - 1) / 2")
	if err != nil {
		t.Fatal(err)
	}
	expected := "BinOp(/)\n  BinOp(-)\n    Var(A)\n    Number(1)\n  Number(2)\n"
	assign := res.Program.Stmts[0].(*ast.Assign)
	if diff := cmp.Diff(expected, pretty.Print(assign.Expr)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	source, err := os.ReadFile("../testdata/programs/sample.f")
	if err != nil {
		t.Fatal(err)
	}
	res, err := driver.Analyze(string(source))
	if err != nil {
		t.Fatal(err)
	}

	first := pretty.Print(res.Program)
	for i := 0; i < 10; i++ {
		if again := pretty.Print(res.Program); again != first {
			t.Fatalf("Print is not deterministic:\n%s\n---\n%s", first, again)
		}
	}
}
