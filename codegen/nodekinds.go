// Package codegen renders companion source artifacts for an emitted
// grammar: Go constants naming every CST node kind, so a driver caller
// doesn't have to compare node names by string literal.
package codegen

import (
	"fmt"
	"io"
	"text/template"

	"github.com/mifune-lang/lr1gen/symbol"
)

var nodeKindsTemplate = template.Must(template.New("nodekinds").Parse(`// Code generated by lrgen. DO NOT EDIT.

package {{.Package}}

const (
	KindTerminal = "TERMINAL"
{{- range .NonTerminals}}
	Kind{{.Const}} = {{.Quoted}}
{{- end}}
)

const (
{{- range .Terminals}}
	Term{{.Const}} = {{.Quoted}}
{{- end}}
)
`))

type kindEntry struct {
	Const  string
	Quoted string
}

// EmitNodeKinds writes one Go constant per terminal and non-terminal
// name in tab, named for the Go package pkg. The augmented start symbol
// and the end-of-input terminal get no constant.
func EmitNodeKinds(w io.Writer, pkg string, tab *symbol.Table) error {
	reader := tab.Reader()

	nonTerminals := make([]kindEntry, 0, len(reader.NonTerminalSymbols()))
	for _, s := range reader.NonTerminalSymbols() {
		if s.IsStart() {
			continue // never reduced into an internal node; no kind constant needed
		}
		text, _ := reader.ToText(s)
		nonTerminals = append(nonTerminals, kindEntry{Const: exportName(text), Quoted: fmt.Sprintf("%q", text)})
	}

	terminals := make([]kindEntry, 0, len(reader.TerminalSymbols()))
	for _, s := range reader.TerminalSymbols() {
		if s.IsEOF() {
			continue // never shifted into a leaf node; no kind constant needed
		}
		text, _ := reader.ToText(s)
		terminals = append(terminals, kindEntry{Const: exportName(text), Quoted: fmt.Sprintf("%q", text)})
	}

	return nodeKindsTemplate.Execute(w, struct {
		Package      string
		NonTerminals []kindEntry
		Terminals    []kindEntry
	}{Package: pkg, NonTerminals: nonTerminals, Terminals: terminals})
}

// exportName turns a grammar symbol name like "l_paren" into the
// exported Go identifier fragment "LParen".
func exportName(name string) string {
	var b []byte
	upperNext := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' || c == '-' {
			upperNext = true
			continue
		}
		if upperNext && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upperNext = false
		b = append(b, c)
	}
	return string(b)
}
