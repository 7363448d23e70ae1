package grammar

import "errors"

var (
	// ErrNoProduction is returned when a grammar has no productions at all.
	ErrNoProduction = errors.New("a grammar needs at least one production")
	// ErrUndefinedSymbol is returned when a symbol is referenced but never
	// appears as the LHS of any production and is registered as a terminal
	// by reference alone, yet the grammar expected it to be a non-terminal
	// (currently: the declared start symbol).
	ErrUndefinedSymbol = errors.New("undefined symbol")
	// ErrDuplicateRule is returned when the same LHS -> RHS production is
	// declared more than once.
	ErrDuplicateRule = errors.New("duplicate production")
	// ErrReservedSymbol is returned when a grammar source declares a name
	// that collides with a reserved symbol.
	ErrReservedSymbol = errors.New("symbol is reserved")
	// ErrConflict is returned by BuildTable under the Strict conflict
	// policy as soon as any shift/reduce or reduce/reduce conflict is
	// found.
	ErrConflict = errors.New("LR(1) conflict")
)
