package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mifune-lang/lr1gen/lrtest"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <grammar file> <test case file or directory>",
		Short:   "Run structural CST test cases against a grammar",
		Example: `  lrgen test grammar.lrg testdata/`,
		Args:    cobra.ExactArgs(2),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	g, _, tab, err := buildFromSource(args[0])
	if err != nil {
		return err
	}

	tester := &lrtest.Tester{
		Grammar: g,
		Table:   tab,
		Cases:   lrtest.ListTestCases(args[1]),
	}

	results := tester.Run()
	failed := 0
	for _, r := range results {
		if r.Passed() {
			pterm.Success.Println(r.String())
			continue
		}
		failed++
		pterm.Error.Println(r.String())
	}

	pterm.Info.Printfln("%d passed, %d failed", len(results)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}
