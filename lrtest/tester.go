package lrtest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mifune-lang/lr1gen/driver"
	"github.com/mifune-lang/lr1gen/grammar"
)

// CaseFile is one discovered test case file, parsed eagerly so a bad
// file surfaces as a result rather than aborting the whole run.
type CaseFile struct {
	Path string
	Case *TestCase
	Err  error
}

// ListTestCases walks path (a file or a directory, recursively) and
// parses every file it finds as a TestCase.
func ListTestCases(path string) []*CaseFile {
	fi, err := os.Stat(path)
	if err != nil {
		return []*CaseFile{{Path: path, Err: err}}
	}
	if !fi.IsDir() {
		f, err := os.Open(path)
		if err != nil {
			return []*CaseFile{{Path: path, Err: err}}
		}
		defer f.Close()
		c, err := ParseTestCase(f)
		return []*CaseFile{{Path: path, Case: c, Err: err}}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return []*CaseFile{{Path: path, Err: err}}
	}
	var cases []*CaseFile
	for _, e := range entries {
		cases = append(cases, ListTestCases(filepath.Join(path, e.Name()))...)
	}
	return cases
}

// Result is the outcome of running one test case against a grammar.
type Result struct {
	Path  string
	Err   error
	Diffs []*TreeDiff
}

func (r *Result) Passed() bool {
	return r.Err == nil && len(r.Diffs) == 0
}

func (r *Result) String() string {
	if r.Passed() {
		return fmt.Sprintf("PASS %v", r.Path)
	}
	if r.Err != nil {
		return fmt.Sprintf("FAIL %v: %v", r.Path, r.Err)
	}
	var lines []string
	for _, d := range r.Diffs {
		lines = append(lines, fmt.Sprintf("  %v\n    expected path: %v\n    actual path:   %v", d.Message, d.ExpectedPath, d.ActualPath))
	}
	return fmt.Sprintf("FAIL %v: output mismatch\n%v", r.Path, strings.Join(lines, "\n"))
}

// Tester runs a set of discovered test cases against one compiled
// grammar.
type Tester struct {
	Grammar *grammar.Grammar
	Table   *grammar.Table
	Cases   []*CaseFile
}

func (t *Tester) Run() []*Result {
	results := make([]*Result, 0, len(t.Cases))
	for _, c := range t.Cases {
		results = append(results, t.runOne(c))
	}
	return results
}

func (t *Tester) runOne(c *CaseFile) *Result {
	if c.Err != nil {
		return &Result{Path: c.Path, Err: c.Err}
	}

	stream := driver.NewLiteralTokenStream(strings.NewReader(c.Case.Tokens), t.Grammar.SymbolTable.Reader())
	p := driver.NewParser(t.Table, t.Grammar.Rules, t.Grammar.SymbolTable.Reader(), stream)
	root, err := p.Parse()
	if err != nil {
		return &Result{Path: c.Path, Err: err}
	}

	diffs := DiffTree(c.Case.Expected, FromNode(root).Fill())
	if len(diffs) > 0 {
		return &Result{Path: c.Path, Diffs: diffs}
	}
	return &Result{Path: c.Path}
}
