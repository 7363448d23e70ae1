package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mifune-lang/lr1gen/config"
	"github.com/mifune-lang/lr1gen/grammar"
	"github.com/mifune-lang/lr1gen/metagrammar"
)

// readGrammarSource reads a grammar source file, or stdin when path is
// empty, and parses it into a grammar.Builder.
func readGrammarSource(path string) (*grammar.Builder, error) {
	var r io.Reader
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open grammar source %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return metagrammar.Parse(src)
}

// conflictPolicy resolves the effective policy from the --strict flag
// and the settings file, the flag taking precedence.
func conflictPolicy(cfg *config.Config) grammar.ConflictPolicy {
	if *rootFlags.strict || cfg.ConflictPolicy == "strict" {
		return grammar.Strict
	}
	return grammar.ResolveShiftOverReduce
}

// buildFromSource is the full pipeline shared by every subcommand that
// starts from a grammar source file: parse, resolve symbols, compute
// FIRST, build the canonical collection, build the table.
func buildFromSource(path string) (*grammar.Grammar, *grammar.Collection, *grammar.Table, error) {
	cfg, err := config.Load(*rootFlags.configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	b, err := readGrammarSource(path)
	if err != nil {
		return nil, nil, nil, err
	}
	g, err := b.Build()
	if err != nil {
		return nil, nil, nil, err
	}

	first := grammar.ComputeFirst(g.Rules)
	col, err := grammar.BuildCollection(g.Rules, first)
	if err != nil {
		return nil, nil, nil, err
	}
	tab, err := grammar.BuildTable(g, col, conflictPolicy(cfg))
	if err != nil {
		return nil, nil, nil, err
	}
	return g, col, tab, nil
}
