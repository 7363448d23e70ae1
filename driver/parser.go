package driver

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/mifune-lang/lr1gen/grammar"
	"github.com/mifune-lang/lr1gen/symbol"
)

// Parser is a table-driven shift-reduce interpreter: one state stack and
// one node stack advanced in lockstep, exactly mirroring the parsing
// table's own ACTION/GOTO cells.
type Parser struct {
	table  *grammar.Table
	rules  *grammar.RuleSet
	reader *symbol.Reader
	stream TokenStream

	states *arraystack.Stack
	nodes  *arraystack.Stack

	// OnStep, if set, is called once per shift/reduce/accept step. It is
	// nil by default so the core driver stays silent; the CLI wires it
	// to pterm.Debug under --trace.
	OnStep func(kind string, detail string)
}

func NewParser(table *grammar.Table, rules *grammar.RuleSet, reader *symbol.Reader, stream TokenStream) *Parser {
	return &Parser{
		table:  table,
		rules:  rules,
		reader: reader,
		stream: stream,
		states: arraystack.New(),
		nodes:  arraystack.New(),
	}
}

// SyntaxError is returned by Parse when the input doesn't match the
// grammar: an unexpected token was found in a state that has no action
// for it.
type SyntaxError struct {
	State    int
	Got      Token
	Expected []symbol.Symbol
}

func (e *SyntaxError) Error() string {
	got := "<eof>"
	if !e.Got.IsEOF() {
		got = e.Got.Lexeme()
	}
	return fmt.Sprintf("unexpected token %q in state %d", got, e.State)
}

func (p *Parser) name(s symbol.Symbol) string {
	if text, ok := p.reader.ToText(s); ok {
		return text
	}
	return s.String()
}

func (p *Parser) top() int {
	v, _ := p.states.Peek()
	return v.(int)
}

// Parse drives the token stream through the table to completion,
// returning the root of the built concrete syntax tree on accept, or a
// *SyntaxError (or a token-stream error) otherwise.
func (p *Parser) Parse() (Node, error) {
	p.states.Push(0)

	tok, err := p.stream.Next()
	if err != nil {
		return nil, err
	}

	for {
		state := p.top()
		action := p.table.Action(state, tok.Terminal())

		switch action.Kind {
		case grammar.ActionShift:
			p.states.Push(action.Target)
			p.nodes.Push(&LeafNode{
				Terminal: tok.Terminal(),
				Name:     p.name(tok.Terminal()),
				Lexeme:   tok.Lexeme(),
			})
			if p.OnStep != nil {
				p.OnStep("shift", fmt.Sprintf("state %d, on %s", action.Target, p.name(tok.Terminal())))
			}
			tok, err = p.stream.Next()
			if err != nil {
				return nil, err
			}

		case grammar.ActionReduce:
			rule := p.rules.Get(grammar.Index(action.Target))
			n := len(rule.RHS)
			children := make([]Node, n)
			for i := n - 1; i >= 0; i-- {
				v, _ := p.nodes.Pop()
				children[i] = v.(Node)
				p.states.Pop()
			}
			toState := p.top()
			next, ok := p.table.Goto(toState, rule.LHS)
			if !ok {
				return nil, fmt.Errorf("no GOTO entry for state %d on %s", toState, p.name(rule.LHS))
			}
			p.states.Push(next)
			p.nodes.Push(&InternalNode{
				NonTerminal: rule.LHS,
				Name:        p.name(rule.LHS),
				Children:    children,
			})
			if p.OnStep != nil {
				p.OnStep("reduce", fmt.Sprintf("rule %d (%s), to state %d", rule.Index, p.name(rule.LHS), next))
			}

		case grammar.ActionAccept:
			if p.OnStep != nil {
				p.OnStep("accept", "")
			}
			v, _ := p.nodes.Pop()
			return v.(Node), nil

		default:
			return nil, &SyntaxError{
				State:    state,
				Got:      tok,
				Expected: p.expectedTerminals(state),
			}
		}
	}
}

func (p *Parser) expectedTerminals(state int) []symbol.Symbol {
	var expected []symbol.Symbol
	for _, t := range p.reader.TerminalSymbols() {
		if p.table.Action(state, t).Kind != grammar.ActionError {
			expected = append(expected, t)
		}
	}
	return expected
}
