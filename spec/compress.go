package spec

import "github.com/mifune-lang/lr1gen/compressor"

// CompressionReport summarizes how much smaller the ACTION table would
// be under row-displacement compression, without changing the emitted
// artifact's own (plain, directly-indexable) encoding.
type CompressionReport struct {
	OriginalEntries   int
	CompressedEntries int
}

// CompressAction runs a row-displacement compression pass over c's flat
// ACTION table and reports the entry counts before and after. It never
// mutates c; a compiled grammar file is always emitted in the plain
// encoding so every driver can index it without linking the compressor.
func CompressAction(c *CompiledGrammar) (*CompressionReport, error) {
	orig, err := compressor.NewOriginalTable(c.Action, c.TerminalCount)
	if err != nil {
		return nil, err
	}
	tab := compressor.NewRowDisplacementTable(0)
	if err := tab.Compress(orig); err != nil {
		return nil, err
	}
	return &CompressionReport{
		OriginalEntries:   len(c.Action),
		CompressedEntries: len(tab.Entries),
	}, nil
}
