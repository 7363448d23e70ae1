package grammar

import (
	"fmt"

	"github.com/mifune-lang/lr1gen/symbol"
)

// Grammar is a fully resolved, augmented grammar: a symbol table and a
// rule set whose rule 0 is LHS' -> LHS for the declared start symbol.
type Grammar struct {
	SymbolTable *symbol.Table
	Rules       *RuleSet
}

// Production is one raw LHS -> RHS pair as read from a grammar source,
// before symbol resolution.
type Production struct {
	LHS string
	RHS []string
}

// Builder resolves a list of named productions into a Grammar, assigning
// Symbol values to every distinct name and appending the augmented start
// rule. A name is classified as a non-terminal if it appears as the LHS
// of any production, wherever that production is declared; every other
// name is a terminal.
type Builder struct {
	start       string
	productions []Production
}

func NewBuilder(start string) *Builder {
	return &Builder{start: start}
}

func (b *Builder) AddProduction(lhs string, rhs []string) {
	b.productions = append(b.productions, Production{LHS: lhs, RHS: rhs})
}

// reservedSymbolName is withheld from grammar sources: tooling built on
// top of this package (diagnostics, error-recovery productions a future
// version might add) needs a name it can rely on never colliding with a
// user-declared symbol.
const reservedSymbolName = "error"

// Build resolves the accumulated productions into a Grammar. It returns
// an error naming the first problem found: an empty production list, a
// reference to the start symbol that was never defined, a production
// that names the reserved symbol, or a production declared twice.
func (b *Builder) Build() (*Grammar, error) {
	if len(b.productions) == 0 {
		return nil, ErrNoProduction
	}

	lhsNames := map[string]bool{}
	for _, p := range b.productions {
		if p.LHS == reservedSymbolName {
			return nil, fmt.Errorf("%w: %q", ErrReservedSymbol, reservedSymbolName)
		}
		for _, name := range p.RHS {
			if name == reservedSymbolName {
				return nil, fmt.Errorf("%w: %q", ErrReservedSymbol, reservedSymbolName)
			}
		}
		lhsNames[p.LHS] = true
	}
	if !lhsNames[b.start] {
		return nil, fmt.Errorf("%w: %q", ErrUndefinedSymbol, b.start)
	}

	tab := symbol.NewTable()
	w := tab.Writer()
	w.RegisterStartSymbol(b.start + "'")

	resolve := func(name string) (symbol.Symbol, error) {
		if lhsNames[name] {
			return w.RegisterNonTerminal(name)
		}
		return w.RegisterTerminal(name)
	}

	startSym, err := resolve(b.start)
	if err != nil {
		return nil, err
	}

	rules := newRuleSet()
	if _, err := rules.append(symbol.Start, []symbol.Symbol{startSym}); err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	for _, p := range b.productions {
		lhsSym, err := resolve(p.LHS)
		if err != nil {
			return nil, err
		}
		rhs := make([]symbol.Symbol, 0, len(p.RHS))
		for _, name := range p.RHS {
			s, err := resolve(name)
			if err != nil {
				return nil, err
			}
			rhs = append(rhs, s)
		}
		key := fmt.Sprintf("%v->%v", p.LHS, p.RHS)
		if seen[key] {
			return nil, fmt.Errorf("%w: %v -> %v", ErrDuplicateRule, p.LHS, p.RHS)
		}
		seen[key] = true
		if _, err := rules.append(lhsSym, rhs); err != nil {
			return nil, err
		}
	}

	return &Grammar{SymbolTable: tab, Rules: rules}, nil
}
