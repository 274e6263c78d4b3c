// Package picol provides an embeddable Tcl-like interpreter for Go
// applications.
//
// # Overview
//
// picol is a minimal, pure-Go implementation of a Tcl-like command
// language, designed for embedding. It provides:
//
//   - A clean, idiomatic Go API
//   - A parser + evaluator core faithful to the classic "Tcl in ~500 lines"
//     design
//   - Automatic argument conversion when registering Go functions as
//     commands
//
// # Quick Start
//
//	import "github.com/picol-lang/picol"
//
//	func main() {
//	    interp := picol.New()
//
//	    result, _ := interp.Run("+ 2 2")
//	    fmt.Println(result) // "4"
//
//	    interp.SetVar("name", "World")
//	    result, _ = interp.Run(`set greeting "Hello, $name"`)
//
//	    interp.Register("double", func(x int64) int64 { return x * 2 })
//	    result, _ = interp.Run("double 21") // "42"
//	}
//
// # Registering Go Functions
//
// Register accepts any Go function and converts arguments and return
// values automatically:
//
//	interp.Register("greet", func(name string) string {
//	    return "Hello, " + name
//	})
//
//	interp.Register("divide", func(a, b int64) (int64, error) {
//	    if b == 0 {
//	        return 0, errors.New("division by zero")
//	    }
//	    return a / b, nil
//	})
//
// For full control over argument handling, use RegisterCommand with the
// raw HandlerFunc signature.
package picol

import "fmt"

// Code is the return code of an evaluation: the outcome of a command or
// of a whole script.
type Code int

const (
	// OK indicates successful completion; Interp.Result holds the value.
	OK Code = iota
	// ERR indicates a failure; Interp.Result holds a human-readable message.
	ERR
	// RETURN is produced by the return command and consumed by the
	// user-procedure dispatcher.
	RETURN
	// BREAK is produced by the break command and consumed by while.
	BREAK
	// CONTINUE is produced by the continue command and consumed by while.
	CONTINUE
)

// String returns the canonical name of the code, as used in the
// "[<code>] <result>" host convention (spec.md section 6).
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case ERR:
		return "ERR"
	case RETURN:
		return "RETURN"
	case BREAK:
		return "BREAK"
	case CONTINUE:
		return "CONTINUE"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// EvalError reports a script that evaluated to a non-OK code via Run.
// Its Code distinguishes a genuine error (ERR) from a control-flow code
// (RETURN/BREAK/CONTINUE) that escaped to the top level.
type EvalError struct {
	Code   Code
	Result string
}

func (e *EvalError) Error() string {
	if e.Result == "" {
		return fmt.Sprintf("picol: %s", e.Code)
	}
	return fmt.Sprintf("picol: %s: %s", e.Code, e.Result)
}
