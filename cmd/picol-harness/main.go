// Command picol-harness runs golden-file test suites against the picol
// package in-process.
package main

import (
	"os"

	"github.com/picol-lang/picol/internal/goldentest"
	"github.com/spf13/cobra"
)

func main() {
	var pattern string

	root := &cobra.Command{
		Use:   "picol-harness <test-files-or-dirs>...",
		Short: "run golden-file tests for the picol interpreter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode := goldentest.Run(goldentest.Config{
				TestPaths:   args,
				NamePattern: pattern,
				Output:      os.Stdout,
				ErrOutput:   os.Stderr,
			})
			os.Exit(exitCode)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list <test-files-or-dirs>...",
		Short: "list matching test case names without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode := goldentest.List(goldentest.Config{
				TestPaths:   args,
				NamePattern: pattern,
				Output:      os.Stdout,
				ErrOutput:   os.Stderr,
			})
			os.Exit(exitCode)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&pattern, "pattern", "", "regex filtering test names")
	root.AddCommand(listCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
