package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/mifune-lang/lr1gen/grammar"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe <grammar file>",
		Short:   "Print the canonical collection, table, and conflicts for a grammar",
		Example: `  lrgen describe grammar.lrg`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	g, col, tab, err := buildFromSource(args[0])
	if err != nil {
		return err
	}

	s, err := pterm.DefaultTree.WithRoot(collectionTreeNode(col)).Srender()
	if err != nil {
		return fmt.Errorf("rendering canonical collection: %w", err)
	}
	fmt.Fprintln(os.Stdout, s)
	fmt.Fprint(os.Stdout, grammar.Describe(g, col, tab))
	return nil
}

// collectionTreeNode lays the canonical collection out as a tree rooted at
// the collection itself, one child per state, one grandchild per item, so
// it renders with the same pterm tree printer as a parse result.
func collectionTreeNode(col *grammar.Collection) pterm.TreeNode {
	states := make([]pterm.TreeNode, len(col.States))
	for i, state := range col.States {
		items := grammar.SortedItems(state)
		children := make([]pterm.TreeNode, len(items))
		for j, it := range items {
			children[j] = pterm.TreeNode{Text: it.String()}
		}
		states[i] = pterm.TreeNode{Text: fmt.Sprintf("state %d", state.ID), Children: children}
	}
	return pterm.TreeNode{Text: "canonical collection", Children: states}
}
