package grammar

import (
	"github.com/mifune-lang/lr1gen/symbol"
)

// entry is one non-terminal's accumulated FIRST or FOLLOW set, plus the
// nullable/EOF flag that set membership alone can't carry.
type entry struct {
	symbols map[symbol.Symbol]struct{}
	flag    bool // nullable, for FIRST; reaches end-of-input, for FOLLOW
}

func newEntry() *entry {
	return &entry{symbols: map[symbol.Symbol]struct{}{}}
}

func (e *entry) add(s symbol.Symbol) bool {
	if _, ok := e.symbols[s]; ok {
		return false
	}
	e.symbols[s] = struct{}{}
	return true
}

func (e *entry) setFlag() bool {
	if e.flag {
		return false
	}
	e.flag = true
	return true
}

func (e *entry) merge(o *entry, includeFlag bool) bool {
	changed := false
	for s := range o.symbols {
		if e.add(s) {
			changed = true
		}
	}
	if includeFlag && o.flag && e.setFlag() {
		changed = true
	}
	return changed
}

// FirstSets is FIRST(A) for every non-terminal A of a grammar.
type FirstSets struct {
	byNonTerminal map[symbol.Symbol]*entry
}

// ComputeFirst computes FIRST(A) for every non-terminal in rules by
// fixed-point iteration over every rule until no set changes.
func ComputeFirst(rules *RuleSet) *FirstSets {
	fst := &FirstSets{byNonTerminal: map[symbol.Symbol]*entry{}}
	for _, r := range rules.All() {
		if _, ok := fst.byNonTerminal[r.LHS]; !ok {
			fst.byNonTerminal[r.LHS] = newEntry()
		}
	}

	for {
		changed := false
		for _, r := range rules.All() {
			acc := fst.byNonTerminal[r.LHS]
			if fst.extendFromRule(acc, r) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return fst
}

// extendFromRule folds FIRST(RHS) of a single rule into acc.
func (fst *FirstSets) extendFromRule(acc *entry, r *Rule) bool {
	if r.IsEmpty() {
		return acc.setFlag()
	}
	changed := false
	for _, s := range r.RHS {
		if s.IsTerminal() {
			if acc.add(s) {
				changed = true
			}
			return changed
		}
		e := fst.byNonTerminal[s]
		if acc.merge(e, false) {
			changed = true
		}
		if !e.flag {
			return changed
		}
	}
	if acc.setFlag() {
		changed = true
	}
	return changed
}

// Of returns FIRST(s) for a single symbol: a terminal's FIRST set is
// itself; a non-terminal's is looked up from the computed table.
func (fst *FirstSets) Of(s symbol.Symbol) (syms map[symbol.Symbol]struct{}, nullable bool) {
	if s.IsTerminal() {
		return map[symbol.Symbol]struct{}{s: {}}, false
	}
	e := fst.byNonTerminal[s]
	return e.symbols, e.flag
}

// OfSequence computes FIRST(β) for a symbol sequence β (e.g. the symbols
// after a dot in an LR(1) item, possibly followed by a lookahead
// terminal appended by the caller).
func (fst *FirstSets) OfSequence(seq []symbol.Symbol) (syms map[symbol.Symbol]struct{}, nullable bool) {
	result := map[symbol.Symbol]struct{}{}
	for _, s := range seq {
		part, partNullable := fst.Of(s)
		for t := range part {
			result[t] = struct{}{}
		}
		if !partNullable {
			return result, false
		}
	}
	return result, true
}

// FollowSets is FOLLOW(A) for every non-terminal A of a grammar.
type FollowSets struct {
	byNonTerminal map[symbol.Symbol]*entry
}

// ComputeFollow computes FOLLOW(A) for every non-terminal, given FIRST
// sets already computed for the same grammar.
func ComputeFollow(rules *RuleSet, first *FirstSets) *FollowSets {
	flw := &FollowSets{byNonTerminal: map[symbol.Symbol]*entry{}}
	nonTerminals := map[symbol.Symbol]struct{}{}
	for _, r := range rules.All() {
		nonTerminals[r.LHS] = struct{}{}
		flw.byNonTerminal[r.LHS] = newEntry()
	}

	for {
		changed := false
		for nt := range nonTerminals {
			e := flw.byNonTerminal[nt]
			if nt.IsStart() {
				if e.setFlag() {
					changed = true
				}
			}
			for _, r := range rules.All() {
				for i, s := range r.RHS {
					if s != nt {
						continue
					}
					beta, betaNullable := first.OfSequence(r.RHS[i+1:])
					for t := range beta {
						if e.add(t) {
							changed = true
						}
					}
					if betaNullable {
						lhsFollow := flw.byNonTerminal[r.LHS]
						if e.merge(lhsFollow, true) {
							changed = true
						}
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return flw
}

// Of returns FOLLOW(nt) and whether end-of-input may directly follow it.
func (flw *FollowSets) Of(nt symbol.Symbol) (syms map[symbol.Symbol]struct{}, reachesEOF bool) {
	e := flw.byNonTerminal[nt]
	return e.symbols, e.flag
}
