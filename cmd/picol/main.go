// Command picol is an interactive shell and script runner for the picol
// language.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/picol-lang/picol"
	"github.com/spf13/cobra"
)

func main() {
	var evalFlag string
	var debugPath string

	root := &cobra.Command{
		Use:   "picol [script]",
		Short: "run or interactively evaluate picol scripts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interp := picol.New()

			var debugLog *os.File
			if debugPath != "" {
				f, err := os.Create(debugPath)
				if err != nil {
					return fmt.Errorf("opening debug log: %w", err)
				}
				defer f.Close()
				debugLog = f
			}

			if evalFlag != "" {
				return runAndPrint(interp, evalFlag)
			}
			if len(args) == 1 {
				return runFile(interp, args[0])
			}

			stat, _ := os.Stdin.Stat()
			if (stat.Mode() & os.ModeCharDevice) != 0 {
				return runREPL(interp, debugLog)
			}
			src, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			return runAndPrint(interp, string(src))
		},
	}

	root.Flags().StringVarP(&evalFlag, "command", "c", "", "evaluate the given script and exit")
	root.Flags().StringVar(&debugPath, "debug", "", "write REPL trace lines to this file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFile(interp *picol.Interp, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return runAndPrint(interp, string(src))
}

func runAndPrint(interp *picol.Interp, source string) error {
	result, err := interp.Run(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if result != "" {
		fmt.Println(result)
	}
	return nil
}

func runREPL(interp *picol.Interp, debugLog *os.File) error {
	editor := NewLineEditor(debugLog)
	var buffer string

	for {
		prompt := "% "
		if buffer != "" {
			prompt = "> "
		}
		line, err := editor.ReadLine(prompt)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if buffer != "" {
			buffer += "\n" + line
		} else {
			buffer = line
		}

		editor.trace("buffer now: %q", buffer)

		if needsMore(buffer) {
			continue
		}

		result, err := interp.Run(buffer)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else if result != "" {
			fmt.Println(result)
		}
		buffer = ""
	}
}
