package metagrammar

import (
	"fmt"

	diag "github.com/mifune-lang/lr1gen/error"
	"github.com/mifune-lang/lr1gen/grammar"
)

// parser is a small hand-written recursive-descent reader over the
// token stream; the meta-syntax has no recursion deep enough to need
// anything beyond one token of lookahead.
type parser struct {
	tokens []*token
	pos    int
}

func (p *parser) peek() *token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return p.tokens[p.pos]
}

func (p *parser) next() *token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind) (*token, error) {
	tok := p.peek()
	if tok == nil {
		return nil, fmt.Errorf("unexpected end of input, expected %v", kind)
	}
	if tok.kind != kind {
		return nil, &diag.Diagnostic{Row: tok.line, Cause: fmt.Errorf("unexpected %v, expected %v", tok.kind, kind)}
	}
	return p.next(), nil
}

// rule is one LHS -> alternatives reading, before being handed to a
// grammar.Builder.
type rule struct {
	lhs  string
	alts [][]string
}

func (p *parser) parseRule() (*rule, error) {
	lhsTok, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokColon); err != nil {
		return nil, err
	}

	r := &rule{lhs: lhsTok.lexeme}
	alt, err := p.parseAlternative()
	if err != nil {
		return nil, err
	}
	r.alts = append(r.alts, alt)

	for {
		tok := p.peek()
		if tok == nil {
			return nil, fmt.Errorf("unterminated rule for %q, expected ';'", r.lhs)
		}
		if tok.kind == tokSemi {
			p.next()
			return r, nil
		}
		if tok.kind != tokPipe {
			return nil, &diag.Diagnostic{Row: tok.line, Cause: fmt.Errorf("unexpected %v, expected '|' or ';'", tok.kind)}
		}
		p.next()
		alt, err := p.parseAlternative()
		if err != nil {
			return nil, err
		}
		r.alts = append(r.alts, alt)
	}
}

// parseAlternative reads the identifiers making up one alternative's
// right-hand side. An empty alternative (immediately followed by '|' or
// ';') is valid and produces a nil slice.
func (p *parser) parseAlternative() ([]string, error) {
	var rhs []string
	for {
		tok := p.peek()
		if tok == nil || tok.kind != tokIdent {
			return rhs, nil
		}
		rhs = append(rhs, tok.lexeme)
		p.next()
	}
}

// Parse reads src and returns a grammar.Builder populated with every
// rule it describes. The first rule's left-hand side becomes the
// grammar's start symbol.
func Parse(src []byte) (*grammar.Builder, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty grammar source")
	}

	p := &parser{tokens: tokens}
	var rules []*rule
	for p.peek() != nil {
		r, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	b := grammar.NewBuilder(rules[0].lhs)
	for _, r := range rules {
		for _, alt := range r.alts {
			b.AddProduction(r.lhs, alt)
		}
	}
	return b, nil
}
