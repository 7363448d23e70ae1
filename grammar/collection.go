package grammar

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/mifune-lang/lr1gen/symbol"
)

// State is one state of the canonical LR(1) collection: a closed item
// set and the dense id it was assigned at (deterministic) discovery
// time.
type State struct {
	ID    int
	Items *ItemSet
}

// Transition records one GOTO edge From -[On]-> To between two states.
type Transition struct {
	From int
	On   symbol.Symbol
	To   int
}

// Collection is the canonical LR(1) collection of states: every state
// reachable from the initial state by repeated GOTO, deduplicated by
// item-set value equality.
type Collection struct {
	States      []*State
	Transitions []Transition

	byFrom map[int]map[symbol.Symbol]int
}

// TransitionFrom looks up the state GOTO(from, on) leads to, if any.
func (c *Collection) TransitionFrom(from int, on symbol.Symbol) (int, bool) {
	to, ok := c.byFrom[from][on]
	return to, ok
}

// fingerprint returns a stable hash of an item set's contents, sorting
// items first so that map iteration order never affects the hash. This
// is the canonical collection's state-identity key, replacing the
// teacher's hand-rolled sha256 byte-concatenation scheme.
func fingerprint(s *ItemSet) (string, error) {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		if a.Dot != b.Dot {
			return a.Dot < b.Dot
		}
		return a.Lookahead < b.Lookahead
	})
	return structhash.Hash(items, 1)
}

// BuildCollection constructs the canonical LR(1) collection by a
// worklist over states, closing and de-duplicating item sets as it
// discovers them. State ids are assigned in first-seen (worklist pop)
// order, so two runs over the same grammar assign identical ids.
func BuildCollection(rules *RuleSet, first *FirstSets) (*Collection, error) {
	initial := Closure([]Item{{Rule: StartIndex, Dot: 0, Lookahead: symbol.EOF}}, rules, first)

	col := &Collection{
		byFrom: map[int]map[symbol.Symbol]int{},
	}

	// known is the authoritative index of fingerprints already assigned a
	// state id; byFingerprint maps a known fingerprint back to that state.
	// A treeset (rather than a plain map) keeps the identity check and the
	// later state-count reconciliation cross-checkable against two
	// independent structures instead of one.
	known := treeset.NewWith(utils.StringComparator)
	byFingerprint := map[string]*State{}
	fp, err := fingerprint(initial)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint the initial state: %w", err)
	}
	known.Add(fp)
	initialState := &State{ID: 0, Items: initial}
	byFingerprint[fp] = initialState
	col.States = append(col.States, initialState)

	worklist := arraylist.New()
	worklist.Add(initialState)

	for !worklist.Empty() {
		v, _ := worklist.Get(0)
		worklist.Remove(0)
		state := v.(*State)

		onSymbols := symbolsAfterDot(state.Items, rules)
		for _, x := range onSymbols {
			next := Goto(state.Items, x, rules, first)
			if next.Len() == 0 {
				continue
			}
			nextFP, err := fingerprint(next)
			if err != nil {
				return nil, fmt.Errorf("failed to fingerprint a successor state: %w", err)
			}

			target, seen := byFingerprint[nextFP]
			if !known.Contains(nextFP) {
				if seen {
					return nil, fmt.Errorf("state fingerprint index out of sync: %q known to byFingerprint but not to known", nextFP)
				}
				known.Add(nextFP)
				target = &State{ID: len(col.States), Items: next}
				byFingerprint[nextFP] = target
				col.States = append(col.States, target)
				worklist.Add(target)
			}

			if col.byFrom[state.ID] == nil {
				col.byFrom[state.ID] = map[symbol.Symbol]int{}
			}
			col.byFrom[state.ID][x] = target.ID
			col.Transitions = append(col.Transitions, Transition{From: state.ID, On: x, To: target.ID})
		}
	}

	if known.Size() != len(col.States) {
		return nil, fmt.Errorf("state fingerprint index out of sync: %d fingerprints for %d states", known.Size(), len(col.States))
	}

	return col, nil
}

func symbolsAfterDot(items *ItemSet, rules *RuleSet) []symbol.Symbol {
	seen := map[symbol.Symbol]struct{}{}
	var syms []symbol.Symbol
	for _, it := range items.Items() {
		x := it.DotSymbol(rules)
		if x.IsNil() {
			continue
		}
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		syms = append(syms, x)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
