package grammar

import (
	"fmt"

	"github.com/mifune-lang/lr1gen/symbol"
)

// Item is a canonical LR(1) item: a rule, a dot position in its RHS, and
// a single lookahead terminal. Unlike an LALR(1) kernel item, the
// lookahead is carried directly on every item rather than propagated
// separately, so two items over the same rule and dot but different
// lookaheads are distinct items.
type Item struct {
	Rule      Index
	Dot       int
	Lookahead symbol.Symbol
}

func (it Item) String() string {
	return fmt.Sprintf("{rule:%v dot:%v la:%v}", it.Rule, it.Dot, it.Lookahead)
}

// DotSymbol returns the RHS symbol immediately after the dot, or
// symbol.Nil if the dot is at the end of the rule.
func (it Item) DotSymbol(rules *RuleSet) symbol.Symbol {
	return rules.Get(it.Rule).Symbol(it.Dot)
}

// IsReducible reports whether the dot has reached the end of the rule's
// RHS, meaning this item calls for a reduction by Rule on Lookahead.
func (it Item) IsReducible(rules *RuleSet) bool {
	return it.Dot >= len(rules.Get(it.Rule).RHS)
}

// Advance returns the item with its dot moved one position to the right.
func (it Item) Advance() Item {
	return Item{Rule: it.Rule, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// Beta returns the RHS symbols strictly after the dot (β in A -> α.Bβ).
func (it Item) Beta(rules *RuleSet) []symbol.Symbol {
	rhs := rules.Get(it.Rule).RHS
	if it.Dot+1 >= len(rhs) {
		return nil
	}
	return rhs[it.Dot+1:]
}

// ItemSet is an unordered collection of items with set semantics: Add is
// a no-op if the item is already present.
type ItemSet struct {
	items map[Item]struct{}
}

func NewItemSet() *ItemSet {
	return &ItemSet{items: map[Item]struct{}{}}
}

// Add inserts it into the set and reports whether the set changed.
func (s *ItemSet) Add(it Item) bool {
	if _, ok := s.items[it]; ok {
		return false
	}
	s.items[it] = struct{}{}
	return true
}

func (s *ItemSet) Contains(it Item) bool {
	_, ok := s.items[it]
	return ok
}

func (s *ItemSet) Len() int {
	return len(s.items)
}

// Items returns every item in the set in no particular order. Callers
// that need a stable order should sort the result.
func (s *ItemSet) Items() []Item {
	items := make([]Item, 0, len(s.items))
	for it := range s.items {
		items = append(items, it)
	}
	return items
}

// Closure computes the canonical LR(1) closure of a seed set of items:
// for every item A -> α.Bβ, a] with B a non-terminal, and every rule
// B -> γ, the closure adds B -> .γ, b] for every terminal b in
// FIRST(βa) (β followed by the lookahead a, the canonical rule, never
// FOLLOW(B)).
func Closure(seed []Item, rules *RuleSet, first *FirstSets) *ItemSet {
	result := NewItemSet()
	worklist := make([]Item, 0, len(seed))
	for _, it := range seed {
		if result.Add(it) {
			worklist = append(worklist, it)
		}
	}

	for len(worklist) > 0 {
		it := worklist[0]
		worklist = worklist[1:]

		b := it.DotSymbol(rules)
		if b.IsNil() || b.IsTerminal() {
			continue
		}

		betaA := append(append([]symbol.Symbol{}, it.Beta(rules)...), it.Lookahead)
		lookaheads, _ := first.OfSequence(betaA)

		for _, r := range rules.ByLHS(b) {
			for la := range lookaheads {
				newItem := Item{Rule: r.Index, Dot: 0, Lookahead: la}
				if result.Add(newItem) {
					worklist = append(worklist, newItem)
				}
			}
		}
	}

	return result
}

// Goto computes GOTO(items, X): advance the dot over X in every item of
// items whose dot symbol is X, then close the result.
func Goto(items *ItemSet, x symbol.Symbol, rules *RuleSet, first *FirstSets) *ItemSet {
	var moved []Item
	for it := range items.items {
		if it.DotSymbol(rules) == x {
			moved = append(moved, it.Advance())
		}
	}
	if len(moved) == 0 {
		return NewItemSet()
	}
	return Closure(moved, rules, first)
}
