// Package driver implements the shift-reduce parsing engine: the
// ACTION/GOTO table interpreter and the concrete syntax tree it builds.
package driver

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/mifune-lang/lr1gen/symbol"
)

// Node is a concrete syntax tree node: either an InternalNode (one per
// reduction) or a LeafNode (one per shifted token). It has no parent
// pointer; trees are walked top-down only.
type Node interface {
	isNode()
}

// InternalNode is produced by a reduction: one child per RHS symbol of
// the rule reduced, in left-to-right order.
type InternalNode struct {
	NonTerminal symbol.Symbol
	Name        string
	Children    []Node
}

func (*InternalNode) isNode() {}

// LeafNode is produced by a shift: the terminal shifted and its lexeme.
type LeafNode struct {
	Terminal symbol.Symbol
	Name     string
	Lexeme   string
}

func (*LeafNode) isNode() {}

// PrintTree renders node with pterm's tree printer, the same library this
// generator's REPL and CLI already use for every other piece of rendered
// output.
func PrintTree(w io.Writer, node Node) error {
	if node == nil {
		return nil
	}
	s, err := pterm.DefaultTree.WithRoot(toTreeNode(node)).Srender()
	if err != nil {
		return fmt.Errorf("rendering parse tree: %w", err)
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func toTreeNode(node Node) pterm.TreeNode {
	switch n := node.(type) {
	case *LeafNode:
		return pterm.TreeNode{Text: fmt.Sprintf("%v %#v", n.Name, n.Lexeme)}
	case *InternalNode:
		children := make([]pterm.TreeNode, len(n.Children))
		for i, c := range n.Children {
			children[i] = toTreeNode(c)
		}
		return pterm.TreeNode{Text: n.Name, Children: children}
	default:
		return pterm.TreeNode{}
	}
}

// Walk visits node and every descendant in pre-order.
func Walk(node Node, visit func(Node)) {
	if node == nil {
		return
	}
	visit(node)
	if in, ok := node.(*InternalNode); ok {
		for _, c := range in.Children {
			Walk(c, visit)
		}
	}
}
