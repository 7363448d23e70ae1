package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mifune-lang/lr1gen/driver"
	"github.com/mifune-lang/lr1gen/spec"
)

var parseFlags = struct {
	source *string
	trace  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <compiled grammar file>",
		Short:   "Parse a whitespace-separated token stream against a compiled table",
		Example: `  cat tokens | lrgen parse grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "token source file path (default stdin)")
	parseFlags.trace = cmd.Flags().Bool("trace", false, "print each shift/reduce/accept step")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("cannot open compiled grammar %s: %w", args[0], err)
	}
	defer f.Close()

	cgram, err := spec.Read(f)
	if err != nil {
		return fmt.Errorf("cannot read compiled grammar: %w", err)
	}
	tab, rules, table, err := spec.ToRuntime(cgram)
	if err != nil {
		return fmt.Errorf("cannot reconstruct runtime table: %w", err)
	}

	src := os.Stdin
	if *parseFlags.source != "" {
		sf, err := os.Open(*parseFlags.source)
		if err != nil {
			return fmt.Errorf("cannot open source %s: %w", *parseFlags.source, err)
		}
		defer sf.Close()
		src = sf
	}

	reader := tab.Reader()
	stream := driver.NewLiteralTokenStream(src, reader)
	p := driver.NewParser(table, rules, reader, stream)
	if *parseFlags.trace {
		pterm.EnableDebugMessages()
		p.OnStep = func(kind, detail string) {
			pterm.Debug.Printfln("%-6s %s", kind, detail)
		}
	}

	root, err := p.Parse()
	if err != nil {
		return err
	}
	return driver.PrintTree(os.Stdout, root)
}
