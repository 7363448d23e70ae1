// Package lrtest provides a golden-test harness for the shift-reduce
// driver: parse an expected concrete syntax tree written in a small
// S-expression notation, diff it against what the driver actually
// produced, and walk a directory of such test case files.
package lrtest

import (
	"bytes"
	"fmt"

	"github.com/mifune-lang/lr1gen/driver"
)

// Tree is the expected (or, once converted via FromNode, actual) shape
// of a concrete syntax tree, independent of the driver's own Node
// types so that test cases can be parsed without a grammar in hand.
type Tree struct {
	Parent   *Tree
	Offset   int
	Kind     string
	Lexeme   string
	Children []*Tree
}

func NewNonTerminalTree(kind string, children ...*Tree) *Tree {
	return &Tree{Kind: kind, Children: children}
}

func NewTerminalTree(kind, lexeme string) *Tree {
	return &Tree{Kind: kind, Lexeme: lexeme}
}

// Fill backfills Parent/Offset on every descendant so TreeDiff can
// report a dotted path to the first divergence.
func (t *Tree) Fill() *Tree {
	for i, c := range t.Children {
		c.Parent = t
		c.Offset = i
		c.Fill()
	}
	return t
}

func (t *Tree) path() string {
	if t.Parent == nil {
		return t.Kind
	}
	return fmt.Sprintf("%v.[%v]%v", t.Parent.path(), t.Offset, t.Kind)
}

// Format renders t as indented S-expressions, the same notation test
// case files are written in.
func (t *Tree) Format() []byte {
	var b bytes.Buffer
	t.format(&b, 0)
	return b.Bytes()
}

func (t *Tree) format(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("    ")
	}
	buf.WriteByte('(')
	if t.Kind == "" {
		buf.WriteString("<anonymous>")
	} else {
		buf.WriteString(t.Kind)
	}
	if t.Lexeme != "" {
		fmt.Fprintf(buf, " %q", t.Lexeme)
	}
	if len(t.Children) > 0 {
		buf.WriteByte('\n')
		for i, c := range t.Children {
			c.format(buf, depth+1)
			if i < len(t.Children)-1 {
				buf.WriteByte('\n')
			}
		}
	}
	buf.WriteByte(')')
}

// FromNode converts a driver.Node (an actual parse result) into a Tree
// comparable against an expected one parsed from a test case file.
func FromNode(n driver.Node) *Tree {
	switch v := n.(type) {
	case *driver.LeafNode:
		return NewTerminalTree(v.Name, v.Lexeme)
	case *driver.InternalNode:
		children := make([]*Tree, len(v.Children))
		for i, c := range v.Children {
			children[i] = FromNode(c)
		}
		return NewNonTerminalTree(v.Name, children...)
	default:
		return nil
	}
}

// TreeDiff is one point of divergence between an expected and an actual
// tree.
type TreeDiff struct {
	ExpectedPath string
	ActualPath   string
	Message      string
}

func newTreeDiff(expected, actual *Tree, message string) *TreeDiff {
	return &TreeDiff{ExpectedPath: expected.path(), ActualPath: actual.path(), Message: message}
}

// DiffTree reports every structural divergence between expected and
// actual. A Kind of "_" in expected matches any actual kind, for test
// cases that only care about a subtree's shape, not its labels.
func DiffTree(expected, actual *Tree) []*TreeDiff {
	if expected == nil && actual == nil {
		return nil
	}
	if expected == nil || actual == nil {
		return []*TreeDiff{newTreeDiff(&Tree{}, &Tree{}, "nil tree mismatch")}
	}
	if expected.Kind != "_" && actual.Kind != expected.Kind {
		msg := fmt.Sprintf("unexpected kind: expected %q but got %q", expected.Kind, actual.Kind)
		return []*TreeDiff{newTreeDiff(expected, actual, msg)}
	}
	if expected.Lexeme != actual.Lexeme {
		msg := fmt.Sprintf("unexpected lexeme: expected %q but got %q", expected.Lexeme, actual.Lexeme)
		return []*TreeDiff{newTreeDiff(expected, actual, msg)}
	}
	if len(actual.Children) != len(expected.Children) {
		msg := fmt.Sprintf("unexpected child count: expected %v but got %v", len(expected.Children), len(actual.Children))
		return []*TreeDiff{newTreeDiff(expected, actual, msg)}
	}
	var diffs []*TreeDiff
	for i, exp := range expected.Children {
		diffs = append(diffs, DiffTree(exp, actual.Children[i])...)
	}
	return diffs
}
