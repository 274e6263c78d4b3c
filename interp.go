package picol

import (
	"io"
	"os"
)

// Interp is a picol interpreter instance.
//
// Create one with New. An interpreter is not safe for concurrent use from
// multiple goroutines (spec.md section 5).
type Interp struct {
	// Result holds the last command's result string. It is always a
	// valid string, and is reset to empty at the start of every Eval
	// call (spec.md section 3).
	Result string

	// Stdout is where the puts command writes. Defaults to os.Stdout.
	Stdout io.Writer

	level    int
	frame    *frame
	frames   []*frame // stack of pushed frames, for pop bookkeeping
	commands *registry
}

// New creates an interpreter with the core commands (spec.md section 4.6)
// pre-registered.
func New() *Interp {
	i := &Interp{
		Stdout:   os.Stdout,
		frame:    newFrame(nil),
		commands: newRegistry(),
	}
	registerCoreCommands(i)
	return i
}

// pushFrame creates a new call frame on top of the current one. Used by
// the user-procedure dispatcher before evaluating a proc body.
func (i *Interp) pushFrame() {
	i.frames = append(i.frames, i.frame)
	i.frame = newFrame(i.frame)
	i.level++
}

// popFrame restores the previous call frame, discarding the popped
// frame's variables. Must be called exactly once for every pushFrame,
// on every exit path (spec.md section 5).
func (i *Interp) popFrame() {
	n := len(i.frames)
	i.frame = i.frames[n-1]
	i.frames = i.frames[:n-1]
	i.level--
}

// Eval evaluates source and returns the resulting code. Interp.Result
// holds the associated text: the command's result on OK, an error
// message on ERR, the return value on RETURN. break and continue do not
// touch it, so on BREAK/CONTINUE it holds whatever the last command before
// them in the same script left there. This is the raw contract from
// spec.md section 6.
func (i *Interp) Eval(source string) Code {
	return i.eval(source)
}

// Run evaluates source and returns its result as a (string, error) pair,
// the idiomatic Go shape most callers want. OK maps to (result, nil);
// any other code maps to ("", *EvalError), mirroring how feather.Interp.Eval
// turns a TCL_ERROR code into a returned error while still letting a
// caller recover the code via errors.As.
func (i *Interp) Run(source string) (string, error) {
	code := i.eval(source)
	if code == OK {
		return i.Result, nil
	}
	return "", &EvalError{Code: code, Result: i.Result}
}

// Var returns the value of a variable in the current frame, or the empty
// string if it does not exist.
func (i *Interp) Var(name string) string {
	v, _ := i.frame.get(name)
	return v
}

// SetVar binds name to value in the current frame.
func (i *Interp) SetVar(name, value string) {
	i.frame.set(name, value)
}

// RegisterCommand installs a command using the low-level HandlerFunc
// signature, matching spec.md section 6's register_command operation
// exactly. Returns an error if name is already registered.
func (i *Interp) RegisterCommand(name string, handler HandlerFunc, privateData any) error {
	return i.commands.register(name, handler, privateData)
}

// register is the internal helper used by registerCoreCommands. It
// returns the duplicate-name error like RegisterCommand; its caller wraps
// it in must, which panics, since core registration happening twice is a
// programming error, not a runtime condition.
func (i *Interp) register(name string, handler HandlerFunc) error {
	return i.commands.register(name, handler, nil)
}

// ParseStatus reports whether a script is syntactically complete, for
// hosts implementing a multi-line REPL (cmd/picol).
type ParseStatus int

const (
	// ParseComplete means the script can be evaluated as-is.
	ParseComplete ParseStatus = iota
	// ParseIncomplete means more input is needed to close an open
	// brace, bracket, or quote.
	ParseIncomplete
)

// CheckComplete reports whether source has balanced braces, brackets,
// and quotes, so a REPL can tell a genuinely finished line from one that
// needs another line of input. The core evaluator itself never needs
// this — an unterminated construct simply consumes to end of input
// (spec.md section 4.1) — but a line editor driving it one line at a
// time does.
func CheckComplete(source string) ParseStatus {
	braces, brackets := 0, 0
	inQuote := false
	for i := 0; i < len(source); i++ {
		c := source[i]
		switch {
		case c == '\\':
			i++
		case inQuote && c == '"':
			inQuote = false
		case inQuote:
			// any other byte inside a quote is inert for this scan
		case c == '"':
			inQuote = true
		case c == '{':
			braces++
		case c == '}':
			if braces > 0 {
				braces--
			}
		case c == '[':
			brackets++
		case c == ']':
			if brackets > 0 {
				brackets--
			}
		}
	}
	if braces > 0 || brackets > 0 || inQuote {
		return ParseIncomplete
	}
	return ParseComplete
}
