// Package symbol implements the packed terminal/non-terminal identifiers
// shared by every stage of the generator, from grammar ingestion through
// the emitted parsing table.
package symbol

import (
	"fmt"
	"sort"
)

type kind string

const (
	kindNonTerminal = kind("non-terminal")
	kindTerminal    = kind("terminal")
)

func (k kind) String() string {
	return string(k)
}

// Num is the dense, 0-based-per-kind ordinal a Symbol carries.
type Num int32

func (n Num) Int() int {
	return int(n)
}

// Symbol is a signed ordinal: negative values name non-terminals, positive
// values name terminals, and the sign carries the kind instead of a
// dedicated bit flag. Within each kind's half of the number space, one
// ordinal is reserved for a distinguished member (Start among the
// non-terminals, EOF among the terminals) rather than flagging it with a
// second bit, the same way spec.Rule.RHS already signs a rule's symbols to
// tell terminal from non-terminal references apart. The zero value is Nil.
type Symbol int32

func (s Symbol) String() string {
	var prefix string
	switch {
	case s == Start:
		prefix = "s"
	case s == EOF:
		prefix = "e"
	case s.isNonTerminal():
		prefix = "n"
	case s.IsTerminal():
		prefix = "t"
	default:
		prefix = "?"
	}
	return fmt.Sprintf("%v%v", prefix, s.Num())
}

const (
	// Nil is the reserved zero symbol; no grammar symbol may collide with it.
	Nil = Symbol(0)
	// Start is the augmented grammar's distinguished start non-terminal,
	// the non-terminal of smallest magnitude.
	Start = Symbol(-1)
	// EOF is the end-of-input terminal appended to every token stream,
	// the terminal of smallest magnitude.
	EOF = Symbol(1)

	nameEOF = "<eof>"

	nonTerminalNumMin = Num(2) // 1 is reserved for Start.
	terminalNumMin    = Num(2) // 1 is reserved for EOF.
	numMax            = Num(1<<31 - 1)
)

func newSymbol(k kind, num Num) (Symbol, error) {
	if num > numMax {
		return Nil, fmt.Errorf("symbol number exceeds the limit; limit: %v, passed: %v", numMax, num)
	}
	if k == kindNonTerminal {
		return Symbol(-int32(num)), nil
	}
	return Symbol(num), nil
}

// Num returns the ordinal, stripped of the sign that carries the kind.
func (s Symbol) Num() Num {
	if s < 0 {
		return Num(-s)
	}
	return Num(s)
}

func (s Symbol) IsNil() bool {
	return s == Nil
}

// IsStart reports whether s is the augmented grammar's start symbol.
func (s Symbol) IsStart() bool {
	return s == Start
}

// IsEOF reports whether s is the end-of-input terminal.
func (s Symbol) IsEOF() bool {
	return s == EOF
}

func (s Symbol) isNonTerminal() bool {
	return s < 0
}

// IsTerminal reports whether s is a terminal symbol (EOF included).
func (s Symbol) IsTerminal() bool {
	return s > 0
}

// Table maps symbol names to Symbol values and back. It is built once
// through its Writer half and then read through its Reader half; the two
// halves exist so grammar ingestion (write access) and every later stage
// (read-only access) can be given narrower interfaces into the same table.
type Table struct {
	text2Sym     map[string]Symbol
	sym2Text     map[Symbol]string
	nonTermTexts []string
	termTexts    []string
	nonTermNum   Num
	termNum      Num
}

type Writer struct {
	*Table
}

type Reader struct {
	*Table
}

func NewTable() *Table {
	return &Table{
		text2Sym: map[string]Symbol{
			nameEOF: EOF,
		},
		sym2Text: map[Symbol]string{
			EOF: nameEOF,
		},
		termTexts: []string{
			"",      // Nil
			nameEOF, // EOF
		},
		nonTermTexts: []string{
			"", // Nil
			"", // Start
		},
		nonTermNum: nonTerminalNumMin,
		termNum:    terminalNumMin,
	}
}

func (t *Table) Writer() *Writer {
	return &Writer{Table: t}
}

func (t *Table) Reader() *Reader {
	return &Reader{Table: t}
}

func (w *Writer) RegisterStartSymbol(text string) Symbol {
	w.text2Sym[text] = Start
	w.sym2Text[Start] = text
	w.nonTermTexts[Start.Num().Int()] = text
	return Start
}

func (w *Writer) RegisterNonTerminal(text string) (Symbol, error) {
	if sym, ok := w.text2Sym[text]; ok {
		if sym.IsTerminal() {
			return Nil, fmt.Errorf("%q is already registered as a terminal symbol", text)
		}
		return sym, nil
	}
	sym, err := newSymbol(kindNonTerminal, w.nonTermNum)
	if err != nil {
		return Nil, err
	}
	w.nonTermNum++
	w.text2Sym[text] = sym
	w.sym2Text[sym] = text
	w.nonTermTexts = append(w.nonTermTexts, text)
	return sym, nil
}

func (w *Writer) RegisterTerminal(text string) (Symbol, error) {
	if sym, ok := w.text2Sym[text]; ok {
		if !sym.IsTerminal() {
			return Nil, fmt.Errorf("%q is already registered as a non-terminal symbol", text)
		}
		return sym, nil
	}
	sym, err := newSymbol(kindTerminal, w.termNum)
	if err != nil {
		return Nil, err
	}
	w.termNum++
	w.text2Sym[text] = sym
	w.sym2Text[sym] = text
	w.termTexts = append(w.termTexts, text)
	return sym, nil
}

func (r *Reader) ToSymbol(text string) (Symbol, bool) {
	sym, ok := r.text2Sym[text]
	return sym, ok
}

func (r *Reader) ToText(sym Symbol) (string, bool) {
	text, ok := r.sym2Text[sym]
	return text, ok
}

func (r *Reader) TerminalSymbols() []Symbol {
	syms := make([]Symbol, 0, r.termNum.Int()-terminalNumMin.Int()+1)
	for sym := range r.sym2Text {
		if !sym.IsTerminal() {
			continue
		}
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

func (r *Reader) NonTerminalSymbols() []Symbol {
	syms := make([]Symbol, 0, r.nonTermNum.Int()-nonTerminalNumMin.Int()+1)
	for sym := range r.sym2Text {
		if !sym.isNonTerminal() {
			continue
		}
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

func (r *Reader) TerminalTexts() []string {
	return r.termTexts
}

func (r *Reader) NonTerminalTexts() []string {
	return r.nonTermTexts
}
