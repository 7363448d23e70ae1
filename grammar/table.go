package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mifune-lang/lr1gen/symbol"
)

// ActionKind distinguishes the four things a parser can do on a given
// (state, terminal) cell.
type ActionKind int

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is one ACTION table cell. For ActionShift, Target is the state
// to shift to; for ActionReduce, Target is the rule index to reduce by;
// for ActionAccept and ActionError, Target is unused.
type Action struct {
	Kind   ActionKind
	Target int
}

// Conflict is a shift/reduce or reduce/reduce collision discovered while
// populating one ACTION cell. Every conflict is recorded even when the
// fallback resolution policy silently picks a winner, so callers can
// always surface it as a diagnostic.
type Conflict interface {
	State() int
	Terminal() symbol.Symbol
	conflict()
}

type ShiftReduceConflict struct {
	StateID    int
	On         symbol.Symbol
	ReduceRule Index
}

func (c *ShiftReduceConflict) State() int              { return c.StateID }
func (c *ShiftReduceConflict) Terminal() symbol.Symbol { return c.On }
func (c *ShiftReduceConflict) conflict()               {}

type ReduceReduceConflict struct {
	StateID int
	On      symbol.Symbol
	Rules   []Index // in declaration order; Rules[0] is the rule the fallback policy picked
}

func (c *ReduceReduceConflict) State() int              { return c.StateID }
func (c *ReduceReduceConflict) Terminal() symbol.Symbol { return c.On }
func (c *ReduceReduceConflict) conflict()               {}

// ConflictPolicy selects what happens once a conflict is detected.
type ConflictPolicy int

const (
	// ResolveShiftOverReduce keeps the teacher's own default: shift wins
	// over reduce, and among competing reductions the earlier-declared
	// rule wins. The conflict is still recorded.
	ResolveShiftOverReduce ConflictPolicy = iota
	// Strict turns any conflict into a hard build failure; no table is
	// produced.
	Strict
)

// Table is the populated ACTION/GOTO table for a grammar's canonical
// LR(1) collection.
type Table struct {
	actions   map[int]map[symbol.Symbol]Action
	gotos     map[int]map[symbol.Symbol]int
	Conflicts []Conflict
}

// NewRawTable builds a Table directly from already-resolved ACTION/GOTO
// maps, for reconstructing a Table from a previously emitted artifact
// rather than deriving one from a canonical collection.
func NewRawTable(actions map[int]map[symbol.Symbol]Action, gotos map[int]map[symbol.Symbol]int) *Table {
	return &Table{actions: actions, gotos: gotos}
}

// Action returns the ACTION table entry for (state, on).
func (t *Table) Action(state int, on symbol.Symbol) Action {
	if row, ok := t.actions[state]; ok {
		if a, ok := row[on]; ok {
			return a
		}
	}
	return Action{Kind: ActionError}
}

// Goto returns the GOTO table entry for (state, on a non-terminal).
func (t *Table) Goto(state int, on symbol.Symbol) (int, bool) {
	to, ok := t.gotos[state][on]
	return to, ok
}

func (t *Table) setAction(state int, on symbol.Symbol, a Action) {
	if t.actions[state] == nil {
		t.actions[state] = map[symbol.Symbol]Action{}
	}
	t.actions[state][on] = a
}

// BuildTable populates the ACTION/GOTO table from a canonical LR(1)
// collection. Under Strict, the first conflict found aborts the build
// and no partial table is returned.
func BuildTable(g *Grammar, col *Collection, policy ConflictPolicy) (*Table, error) {
	t := &Table{
		actions: map[int]map[symbol.Symbol]Action{},
		gotos:   map[int]map[symbol.Symbol]int{},
	}

	for _, state := range col.States {
		for _, it := range state.Items.Items() {
			switch {
			case it.IsReducible(g.Rules):
				if it.Rule == StartIndex {
					if err := t.writeAccept(state.ID, symbol.EOF, policy); err != nil {
						return nil, err
					}
					continue
				}
				if err := t.writeReduce(state.ID, it.Lookahead, it.Rule, policy); err != nil {
					return nil, err
				}
			default:
				x := it.DotSymbol(g.Rules)
				to, ok := col.TransitionFrom(state.ID, x)
				if !ok {
					continue
				}
				if x.IsTerminal() {
					if err := t.writeShift(state.ID, x, to, policy); err != nil {
						return nil, err
					}
				} else {
					if t.gotos[state.ID] == nil {
						t.gotos[state.ID] = map[symbol.Symbol]int{}
					}
					t.gotos[state.ID][x] = to
				}
			}
		}
	}

	return t, nil
}

func (t *Table) writeShift(state int, on symbol.Symbol, to int, policy ConflictPolicy) error {
	existing := t.Action(state, on)
	switch existing.Kind {
	case ActionError:
		t.setAction(state, on, Action{Kind: ActionShift, Target: to})
	case ActionShift:
		// Identical shift targets are always consistent; nothing to do.
	case ActionReduce:
		c := &ShiftReduceConflict{StateID: state, On: on, ReduceRule: Index(existing.Target)}
		t.Conflicts = append(t.Conflicts, c)
		if policy == Strict {
			return fmt.Errorf("%w: %s", ErrConflict, describeConflict(c))
		}
		t.setAction(state, on, Action{Kind: ActionShift, Target: to})
	}
	return nil
}

func (t *Table) writeReduce(state int, on symbol.Symbol, rule Index, policy ConflictPolicy) error {
	existing := t.Action(state, on)
	switch existing.Kind {
	case ActionError:
		t.setAction(state, on, Action{Kind: ActionReduce, Target: int(rule)})
	case ActionShift:
		c := &ShiftReduceConflict{StateID: state, On: on, ReduceRule: rule}
		t.Conflicts = append(t.Conflicts, c)
		if policy == Strict {
			return fmt.Errorf("%w: %s", ErrConflict, describeConflict(c))
		}
		// shift over reduce: leave the existing shift action in place.
	case ActionReduce:
		other := Index(existing.Target)
		winner, loser := other, rule
		if rule < other {
			winner, loser = rule, other
		}
		c := &ReduceReduceConflict{StateID: state, On: on, Rules: []Index{winner, loser}}
		t.Conflicts = append(t.Conflicts, c)
		if policy == Strict {
			return fmt.Errorf("%w: %s", ErrConflict, describeConflict(c))
		}
		t.setAction(state, on, Action{Kind: ActionReduce, Target: int(winner)})
	}
	return nil
}

func (t *Table) writeAccept(state int, on symbol.Symbol, policy ConflictPolicy) error {
	existing := t.Action(state, on)
	if existing.Kind != ActionError {
		return fmt.Errorf("%w: accept collides with an existing action in state %d", ErrConflict, state)
	}
	t.setAction(state, on, Action{Kind: ActionAccept})
	return nil
}

func describeConflict(c Conflict) string {
	switch v := c.(type) {
	case *ShiftReduceConflict:
		return fmt.Sprintf("shift/reduce in state %d on %s (reduce by rule %d)", v.StateID, v.On, v.ReduceRule)
	case *ReduceReduceConflict:
		parts := make([]string, len(v.Rules))
		for i, r := range v.Rules {
			parts[i] = fmt.Sprintf("%d", r)
		}
		return fmt.Sprintf("reduce/reduce in state %d on %s (rules %s)", v.StateID, v.On, strings.Join(parts, ", "))
	default:
		return "unknown conflict"
	}
}

// SortedItems returns a state's items in a stable (rule, dot, lookahead)
// order, so a caller rendering a state as a tree node gets deterministic
// children.
func SortedItems(state *State) []Item {
	items := state.Items.Items()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Rule != items[j].Rule {
			return items[i].Rule < items[j].Rule
		}
		if items[i].Dot != items[j].Dot {
			return items[i].Dot < items[j].Dot
		}
		return items[i].Lookahead < items[j].Lookahead
	})
	return items
}

// Describe renders a human-readable dump of any conflicts and the FOLLOW
// set of every non-terminal (for diagnosing a conflict's cause, never for
// building the table itself). The states and their items are a separate
// concern, structured enough to drive a tree renderer, and are exposed
// through SortedItems instead of this plain-text form.
func Describe(g *Grammar, col *Collection, t *Table) string {
	var b strings.Builder
	if len(t.Conflicts) > 0 {
		fmt.Fprintf(&b, "conflicts:\n")
		for _, c := range t.Conflicts {
			fmt.Fprintf(&b, "  %s\n", describeConflict(c))
		}
	}
	fmt.Fprintf(&b, "follow sets:\n")
	first := ComputeFirst(g.Rules)
	follow := ComputeFollow(g.Rules, first)
	nonTerminals := g.SymbolTable.Reader().NonTerminalSymbols()
	sort.Slice(nonTerminals, func(i, j int) bool { return nonTerminals[i] < nonTerminals[j] })
	for _, nt := range nonTerminals {
		syms, reachesEOF := follow.Of(nt)
		names := make([]string, 0, len(syms))
		for s := range syms {
			names = append(names, s.String())
		}
		sort.Strings(names)
		if reachesEOF {
			names = append(names, "$")
		}
		fmt.Fprintf(&b, "  FOLLOW(%s) = {%s}\n", nt, strings.Join(names, ", "))
	}
	return b.String()
}
