package picol

import "fmt"

// HandlerFunc is the low-level signature for a command implementation.
// argv[0] is always the command's own name. privateData is whatever was
// passed to RegisterCommand when the command was installed (nil for
// builtins and for commands added with Register; the (formals, body) pair
// for user procedures).
type HandlerFunc func(interp *Interp, argv []string, privateData any) Code

// command is an entry in the registry: a name bound to a handler and its
// private data (spec.md section 3, "Command").
type command struct {
	name        string
	handler     HandlerFunc
	privateData any
}

// registry is a name -> *command map scoped to one interpreter.
type registry struct {
	commands map[string]*command
}

func newRegistry() *registry {
	return &registry{commands: make(map[string]*command)}
}

// get performs a linear-semantics lookup (a Go map, in practice) for name.
func (r *registry) get(name string) (*command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// register installs name with the given handler and private data. It
// fails with an error if name is already bound — re-registration under
// the same name is an error (spec.md section 3 and section 7).
func (r *registry) register(name string, handler HandlerFunc, privateData any) error {
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("Command '%s' already defined", name)
	}
	r.commands[name] = &command{name: name, handler: handler, privateData: privateData}
	return nil
}
