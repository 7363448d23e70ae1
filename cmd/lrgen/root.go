package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootFlags = struct {
	configPath *string
	strict     *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "lrgen",
	Short: "Generate a canonical LR(1) parsing table from a grammar",
	Long: `lrgen compiles a grammar into a portable ACTION/GOTO table and drives
a shift-reduce parser against it for debugging and conformance testing.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.configPath = rootCmd.PersistentFlags().String("config", "lrgen.toml", "settings file path")
	rootFlags.strict = rootCmd.PersistentFlags().Bool("strict", false, "fail the build on any unresolved shift/reduce or reduce/reduce conflict")
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
