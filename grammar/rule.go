// Package grammar implements the grammar model, the FIRST/FOLLOW engine,
// the canonical LR(1) item machinery, and the canonical collection and
// parsing table builders.
package grammar

import (
	"fmt"

	"github.com/mifune-lang/lr1gen/symbol"
)

// Index is a rule's position in its RuleSet. Rule 0 is always the
// augmented grammar's start rule; indices are dense and stable in
// declaration order.
type Index int

const (
	// StartIndex is the augmented start rule's fixed index.
	StartIndex = Index(0)
)

// Rule is a single production LHS -> RHS. An empty RHS represents an
// epsilon production.
type Rule struct {
	Index Index
	LHS   symbol.Symbol
	RHS   []symbol.Symbol
}

func newRule(index Index, lhs symbol.Symbol, rhs []symbol.Symbol) (*Rule, error) {
	if lhs.IsNil() {
		return nil, fmt.Errorf("rule %v: LHS must be a non-nil symbol", index)
	}
	for _, s := range rhs {
		if s.IsNil() {
			return nil, fmt.Errorf("rule %v: RHS symbols must be non-nil; LHS: %v", index, lhs)
		}
	}
	return &Rule{Index: index, LHS: lhs, RHS: rhs}, nil
}

// IsEmpty reports whether the rule's RHS is the empty string (epsilon).
func (r *Rule) IsEmpty() bool {
	return len(r.RHS) == 0
}

// Symbol returns the RHS symbol at position pos, or symbol.Nil if pos is
// at or past the end of the RHS (the dot is at the end of the rule).
func (r *Rule) Symbol(pos int) symbol.Symbol {
	if pos < 0 || pos >= len(r.RHS) {
		return symbol.Nil
	}
	return r.RHS[pos]
}

// RuleSet holds every rule of a grammar, indexed both by declaration
// order and by LHS.
type RuleSet struct {
	rules    []*Rule
	byLHS    map[symbol.Symbol][]*Rule
}

func newRuleSet() *RuleSet {
	return &RuleSet{
		byLHS: map[symbol.Symbol][]*Rule{},
	}
}

// NewRuleSet builds a RuleSet directly from already-resolved rules, for
// reconstructing one from a previously emitted artifact rather than
// deriving it from grammar source. rules must be in declaration order.
func NewRuleSet(rules []*Rule) *RuleSet {
	rs := newRuleSet()
	rs.rules = rules
	for _, r := range rules {
		rs.byLHS[r.LHS] = append(rs.byLHS[r.LHS], r)
	}
	return rs
}

func (rs *RuleSet) append(lhs symbol.Symbol, rhs []symbol.Symbol) (*Rule, error) {
	r, err := newRule(Index(len(rs.rules)), lhs, rhs)
	if err != nil {
		return nil, err
	}
	rs.rules = append(rs.rules, r)
	rs.byLHS[lhs] = append(rs.byLHS[lhs], r)
	return r, nil
}

// Get returns the rule at index i.
func (rs *RuleSet) Get(i Index) *Rule {
	return rs.rules[i]
}

// Len returns the number of rules, including the augmented start rule.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// All returns every rule in declaration order. The caller must not
// mutate the returned slice.
func (rs *RuleSet) All() []*Rule {
	return rs.rules
}

// ByLHS returns every rule whose LHS is lhs, in declaration order.
func (rs *RuleSet) ByLHS(lhs symbol.Symbol) []*Rule {
	return rs.byLHS[lhs]
}
