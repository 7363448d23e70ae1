package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mifune-lang/lr1gen/symbol"
)

// Token is one lexical token handed to the driver. Tokenization itself
// is out of scope for this generator (see the metagrammar package for
// the one tokenizer this module does build, for its own meta-syntax);
// TokenStream is the seam any external scanner plugs into.
type Token interface {
	Terminal() symbol.Symbol
	Lexeme() string
	IsEOF() bool
}

// TokenStream yields one Token at a time. Once the input is exhausted,
// Next returns a Token with IsEOF() true; LiteralTokenStream keeps
// returning such a token on any later call.
type TokenStream interface {
	Next() (Token, error)
}

type literalToken struct {
	terminal symbol.Symbol
	lexeme   string
	eof      bool
}

func (t *literalToken) Terminal() symbol.Symbol { return t.terminal }
func (t *literalToken) Lexeme() string          { return t.lexeme }
func (t *literalToken) IsEOF() bool             { return t.eof }

// LiteralTokenStream reads whitespace-separated terminal names (each
// resolved against a symbol table reader) from r, one per line or
// space-separated on a line, and appends a trailing EOF token. It is
// the token stream the `parse`, `repl`, and `test` CLI subcommands drive
// the parser with when there is no external scanner in play.
type LiteralTokenStream struct {
	scanner *bufio.Scanner
	reader  *symbol.Reader
	done    bool
}

func NewLiteralTokenStream(r io.Reader, reader *symbol.Reader) *LiteralTokenStream {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &LiteralTokenStream{scanner: s, reader: reader}
}

func (s *LiteralTokenStream) Next() (Token, error) {
	if s.done {
		return &literalToken{terminal: symbol.EOF, eof: true}, nil
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, err
		}
		s.done = true
		return &literalToken{terminal: symbol.EOF, eof: true}, nil
	}

	text := s.scanner.Text()
	name, lexeme, _ := strings.Cut(text, ":")
	sym, ok := s.reader.ToSymbol(name)
	if !ok {
		return nil, fmt.Errorf("undefined terminal %q", name)
	}
	if !sym.IsTerminal() {
		return nil, fmt.Errorf("%q is not a terminal", name)
	}
	if lexeme == "" {
		lexeme = name
	}
	return &literalToken{terminal: sym, lexeme: lexeme}, nil
}
