// Package error defines the generator's diagnostic type: a Cause (the
// underlying error, with its detail) and, where known, the source row it
// was found at. The package declares no sentinel causes of its own; the
// grammar-level sentinels are the grammar.Err* values.
package error

import "fmt"

// Diagnostic is one reported problem, with an optional source row (0
// when the cause has no natural source position, e.g. an LR(1)
// conflict discovered during table construction).
type Diagnostic struct {
	Cause error
	Row   int
}

func (e *Diagnostic) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("error: %v", e.Cause)
	}
	return fmt.Sprintf("%v: error: %v", e.Row, e.Cause)
}

func (e *Diagnostic) Unwrap() error {
	return e.Cause
}

// Diagnostics is an ordered list of Diagnostic, returned when a grammar
// source has more than one problem worth reporting before giving up.
type Diagnostics []*Diagnostic

func (ds Diagnostics) Error() string {
	if len(ds) == 1 {
		return ds[0].Error()
	}
	s := fmt.Sprintf("%d errors found:", len(ds))
	for _, d := range ds {
		s += "\n  " + d.Error()
	}
	return s
}
