// Package metagrammar reads the BNF-like grammar source format and
// populates a grammar.Builder from it, so the command line tooling can
// accept plain text grammar files instead of requiring callers to build
// productions programmatically.
//
// Source syntax:
//
//	start : expr ;
//	expr  : expr add term
//	      | term
//	      ;
//	term  : id ;
//
// Each rule binds a single left-hand side non-terminal to one or more
// alternatives, separated by '|' and terminated by ';'. Symbol names are
// identifiers matching [A-Za-z_][A-Za-z0-9_]*; a name that never appears
// on the left of a ':' is a terminal.
package metagrammar

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	diag "github.com/mifune-lang/lr1gen/error"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokColon
	tokPipe
	tokSemi
)

var tokenKindNames = map[tokenKind]string{
	tokIdent: "identifier",
	tokColon: "':'",
	tokPipe:  "'|'",
	tokSemi:  "';'",
}

func (k tokenKind) String() string {
	return tokenKindNames[k]
}

// token is one lexed unit of grammar source, with the 1-based line it
// started on.
type token struct {
	kind   tokenKind
	lexeme string
	line   int
}

func makeToken(kind tokenKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return &token{kind: kind, lexeme: string(m.Bytes), line: m.StartLine + 1}, nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func newLexer() (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`[A-Za-z_][A-Za-z0-9_]*`), makeToken(tokIdent))
	lex.Add([]byte(`:`), makeToken(tokColon))
	lex.Add([]byte(`\|`), makeToken(tokPipe))
	lex.Add([]byte(`;`), makeToken(tokSemi))
	lex.Add([]byte(`(#[^\n]*)|([ \t\n\r]+)`), skip)
	if err := lex.Compile(); err != nil {
		return nil, fmt.Errorf("compiling metagrammar lexer: %w", err)
	}
	return lex, nil
}

// tokenize lexes src into the full token slice, so the parser can work
// with simple lookahead instead of driving the scanner directly.
func tokenize(src []byte) ([]*token, error) {
	lex, err := newLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lex.Scanner(src)
	if err != nil {
		return nil, fmt.Errorf("starting metagrammar scanner: %w", err)
	}

	var tokens []*token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, &diag.Diagnostic{Row: ui.StartLine + 1, Cause: fmt.Errorf("unrecognized input %q", string(ui.Text))}
			}
			return nil, err
		}
		tokens = append(tokens, tok.(*token))
	}
	return tokens, nil
}
