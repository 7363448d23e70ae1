package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mifune-lang/lr1gen/codegen"
	"github.com/mifune-lang/lr1gen/spec"
)

var compileFlags = struct {
	output   *string
	kindsOut *string
	pkg      *string
	compress *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile [grammar file]",
		Short:   "Compile a grammar into a portable parsing table",
		Example: `  lrgen compile grammar.lrg -o grammar.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	compileFlags.kindsOut = cmd.Flags().String("kinds-out", "", "also write a Go node-kind constants file to this path")
	compileFlags.pkg = cmd.Flags().String("kinds-package", "main", "package name for --kinds-out")
	compileFlags.compress = cmd.Flags().Bool("compress", false, "report row-displacement compression stats for the ACTION table")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	var grmPath string
	if len(args) > 0 {
		grmPath = args[0]
	}

	g, col, tab, err := buildFromSource(grmPath)
	if err != nil {
		return err
	}

	if len(tab.Conflicts) > 0 {
		pterm.Warning.Printfln("%d conflict(s) resolved by fallback policy", len(tab.Conflicts))
	}

	artifact := spec.ToArtifact(g, col, tab)

	var out *os.File
	if *compileFlags.output == "" {
		out = os.Stdout
	} else {
		f, err := os.Create(*compileFlags.output)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := artifact.Write(out); err != nil {
		return fmt.Errorf("cannot write compiled grammar: %w", err)
	}

	if *compileFlags.kindsOut != "" {
		var buf bytes.Buffer
		if err := codegen.EmitNodeKinds(&buf, *compileFlags.pkg, g.SymbolTable); err != nil {
			return err
		}
		if err := os.WriteFile(*compileFlags.kindsOut, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("cannot write node-kinds file: %w", err)
		}
	}

	if *compileFlags.compress {
		report, err := spec.CompressAction(artifact)
		if err != nil {
			return err
		}
		pterm.Info.Printfln("ACTION table: %d entries, %d after row-displacement compression",
			report.OriginalEntries, report.CompressedEntries)
	}

	pterm.Success.Printfln("compiled %d states", len(col.States))
	return nil
}
