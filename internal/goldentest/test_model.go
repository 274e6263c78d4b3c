// Package goldentest runs picol scripts against golden expectations,
// in-process against the picol package rather than spawning a separate
// host binary, the way harness.Runner in the teacher repo drove
// feather-tester over a subprocess pipe.
package goldentest

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/picol-lang/picol"
)

// Case is one golden test: a script paired with the code and result it
// must produce, drawn from a ".picol"/".expected" file pair.
type Case struct {
	Name       string
	Path       string
	Script     string
	WantCode   picol.Code
	WantResult string
	WantStdout string
	stdoutSet  bool
}

// loadCase reads scriptPath and its sibling ".expected" file.
func loadCase(name, scriptPath string) (Case, error) {
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return Case{}, err
	}
	expectedPath := strings.TrimSuffix(scriptPath, ".picol") + ".expected"
	f, err := os.Open(expectedPath)
	if err != nil {
		return Case{}, fmt.Errorf("missing %s: %w", expectedPath, err)
	}
	defer f.Close()

	c := Case{Name: name, Path: scriptPath, Script: string(script)}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "return:"):
			code, err := parseCode(strings.TrimSpace(strings.TrimPrefix(line, "return:")))
			if err != nil {
				return Case{}, fmt.Errorf("%s: %w", expectedPath, err)
			}
			c.WantCode = code
		case strings.HasPrefix(line, "result:"):
			c.WantResult = strings.TrimPrefix(strings.TrimPrefix(line, "result:"), " ")
		case strings.HasPrefix(line, "stdout:"):
			c.WantStdout = strings.TrimPrefix(strings.TrimPrefix(line, "stdout:"), " ")
			c.stdoutSet = true
		}
	}
	if err := scanner.Err(); err != nil {
		return Case{}, err
	}
	return c, nil
}

func parseCode(s string) (picol.Code, error) {
	switch s {
	case "OK":
		return picol.OK, nil
	case "ERR":
		return picol.ERR, nil
	case "RETURN":
		return picol.RETURN, nil
	case "BREAK":
		return picol.BREAK, nil
	case "CONTINUE":
		return picol.CONTINUE, nil
	default:
		return 0, fmt.Errorf("unknown return code %q", s)
	}
}
