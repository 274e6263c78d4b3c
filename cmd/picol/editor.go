package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// LineEditor provides raw-mode line editing with arrow-key history, the
// way cmd/feather-tester/editor.go drives a terminal for its REPL, trimmed
// to the subset picol needs: no completion popups, since picol has no
// introspection to complete against (spec.md section 1's non-goals).
type LineEditor struct {
	oldState *term.State
	fd       int

	line   []rune
	cursor int

	history    []string
	histPos    int
	pending    []byte
	debugLog   *os.File
}

// NewLineEditor creates a line editor reading from stdin.
func NewLineEditor(debugLog *os.File) *LineEditor {
	return &LineEditor{fd: int(os.Stdin.Fd()), debugLog: debugLog}
}

func (e *LineEditor) trace(format string, args ...interface{}) {
	if e.debugLog != nil {
		fmt.Fprintf(e.debugLog, format+"\n", args...)
	}
}

func (e *LineEditor) enterRawMode() error {
	oldState, err := term.MakeRaw(e.fd)
	if err != nil {
		return err
	}
	e.oldState = oldState
	return nil
}

func (e *LineEditor) exitRawMode() {
	if e.oldState != nil {
		term.Restore(e.fd, e.oldState)
		e.oldState = nil
	}
}

func (e *LineEditor) readByte() (byte, error) {
	if len(e.pending) > 0 {
		b := e.pending[0]
		e.pending = e.pending[1:]
		return b, nil
	}
	buf := make([]byte, 32)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	if n > 1 {
		e.pending = append(e.pending, buf[1:n]...)
	}
	return buf[0], nil
}

// readKey decodes one logical keypress, collapsing common escape
// sequences into named keys. Unrecognized escape sequences are swallowed
// rather than echoed, matching cmd/feather-tester/editor.go's readKey.
func (e *LineEditor) readKey() (string, error) {
	ch, err := e.readByte()
	if err != nil {
		return "", err
	}

	if ch == 0x1b {
		ch2, err := e.readByte()
		if err != nil {
			return "escape", nil
		}
		if ch2 == '[' {
			ch3, err := e.readByte()
			if err != nil {
				return "escape", nil
			}
			switch ch3 {
			case 'A':
				return "up", nil
			case 'B':
				return "down", nil
			case 'C':
				return "right", nil
			case 'D':
				return "left", nil
			case 'H':
				return "home", nil
			case 'F':
				return "end", nil
			}
			e.trace("readKey: unknown CSI %c, ignoring", ch3)
			return e.readKey()
		}
		return "escape", nil
	}

	switch ch {
	case 0x01:
		return "home", nil
	case 0x03:
		return "ctrl-c", nil
	case 0x04:
		return "ctrl-d", nil
	case 0x05:
		return "end", nil
	case 0x0d, 0x0a:
		return "enter", nil
	case 0x7f, 0x08:
		return "backspace", nil
	case 0x15:
		return "ctrl-u", nil
	}
	return string(rune(ch)), nil
}

func (e *LineEditor) render(prompt string) {
	fmt.Print("\r\x1b[K")
	fmt.Print(prompt + string(e.line))
	if back := len(e.line) - e.cursor; back > 0 {
		fmt.Printf("\x1b[%dD", back)
	}
}

// ReadLine reads one line with editing and history support, returning
// io.EOF when Ctrl-D is pressed on an empty line.
func (e *LineEditor) ReadLine(prompt string) (string, error) {
	if err := e.enterRawMode(); err != nil {
		return "", err
	}
	defer e.exitRawMode()

	e.line = nil
	e.cursor = 0
	e.histPos = len(e.history)
	fmt.Print(prompt)

	for {
		key, err := e.readKey()
		if err != nil {
			fmt.Print("\r\n")
			return "", err
		}
		switch key {
		case "enter":
			fmt.Print("\r\n")
			result := string(e.line)
			if result != "" {
				e.history = append(e.history, result)
			}
			return result, nil
		case "ctrl-c":
			fmt.Print("^C\r\n")
			e.line = nil
			e.cursor = 0
			e.render(prompt)
		case "ctrl-d":
			if len(e.line) == 0 {
				fmt.Print("\r\n")
				return "", io.EOF
			}
		case "backspace":
			if e.cursor > 0 {
				e.line = append(e.line[:e.cursor-1], e.line[e.cursor:]...)
				e.cursor--
				e.render(prompt)
			}
		case "ctrl-u":
			e.line = e.line[e.cursor:]
			e.cursor = 0
			e.render(prompt)
		case "left":
			if e.cursor > 0 {
				e.cursor--
				e.render(prompt)
			}
		case "right":
			if e.cursor < len(e.line) {
				e.cursor++
				e.render(prompt)
			}
		case "home":
			e.cursor = 0
			e.render(prompt)
		case "end":
			e.cursor = len(e.line)
			e.render(prompt)
		case "up":
			if e.histPos > 0 {
				e.histPos--
				e.line = []rune(e.history[e.histPos])
				e.cursor = len(e.line)
				e.render(prompt)
			}
		case "down":
			if e.histPos < len(e.history)-1 {
				e.histPos++
				e.line = []rune(e.history[e.histPos])
				e.cursor = len(e.line)
				e.render(prompt)
			} else if e.histPos < len(e.history) {
				e.histPos = len(e.history)
				e.line = nil
				e.cursor = 0
				e.render(prompt)
			}
		case "escape", "":
			// swallowed
		default:
			r := []rune(key)
			if len(r) == 1 && r[0] >= 0x20 {
				e.line = append(e.line[:e.cursor], append(r, e.line[e.cursor:]...)...)
				e.cursor++
				e.render(prompt)
			}
		}
	}
}
