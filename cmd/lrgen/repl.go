package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mifune-lang/lr1gen/config"
	"github.com/mifune-lang/lr1gen/driver"
	"github.com/mifune-lang/lr1gen/spec"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repl <compiled grammar file>",
		Short:   "Interactively parse one token line at a time",
		Example: `  lrgen repl grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRepl,
	}
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("cannot open compiled grammar %s: %w", args[0], err)
	}
	cgram, err := spec.Read(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("cannot read compiled grammar: %w", err)
	}
	tab, rules, table, err := spec.ToRuntime(cgram)
	if err != nil {
		return fmt.Errorf("cannot reconstruct runtime table: %w", err)
	}

	cfg, err := config.Load(*rootFlags.configPath)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "lrgen> ",
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return fmt.Errorf("create readline instance: %w", err)
	}
	defer rl.Close()

	reader := tab.Reader()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		stream := driver.NewLiteralTokenStream(strings.NewReader(line), reader)
		p := driver.NewParser(table, rules, reader, stream)
		root, err := p.Parse()
		if err != nil {
			pterm.Error.Printfln("%v", err)
			continue
		}
		if err := driver.PrintTree(os.Stdout, root); err != nil {
			pterm.Error.Printfln("%v", err)
		}
	}
}
