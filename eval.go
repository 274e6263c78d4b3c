package picol

import "fmt"

// eval drives the parser over source, performs substitutions, assembles
// argument vectors, and dispatches completed commands. It implements
// spec.md section 4.5 exactly: a single pass over the token stream with
// one growing argv, appending each transformed token either as a new
// word or as an interpolation onto the previous one.
func (i *Interp) eval(source string) Code {
	i.Result = ""

	p := newParser(source)
	var argv []string
	code := OK

	prevKind := p.kind
	for {
		p.next()
		tok := p.token()
		kind := p.kind

		switch kind {
		case Var:
			val, ok := i.frame.get(tok)
			if !ok {
				i.Result = fmt.Sprintf("No such variable '%s'", tok)
				return ERR
			}
			tok = val

		case Cmd:
			sub := i.eval(tok)
			if sub != OK {
				return sub
			}
			tok = i.Result

		case Esc:
			tok = decodeEscapes(tok)

		case Str:
			// kept verbatim

		case Sep:
			prevKind = kind
			continue

		case Eol:
			if len(argv) > 0 {
				code = i.invoke(argv)
				if code != OK {
					return code
				}
			}
			argv = nil
			prevKind = kind
			continue

		case Eof:
			return code
		}

		if prevKind == Sep || prevKind == Eol {
			argv = append(argv, tok)
		} else if len(argv) > 0 {
			argv[len(argv)-1] += tok
		} else {
			// No word open yet and not a boundary: the stream starts
			// mid-word. Not reachable from well-formed input (spec.md
			// section 4.5), but start a word rather than panic.
			argv = append(argv, tok)
		}
		prevKind = kind
	}
}

// invoke resolves argv[0] in the command registry and calls its handler.
func (i *Interp) invoke(argv []string) Code {
	cmd, ok := i.commands.get(argv[0])
	if !ok {
		i.Result = fmt.Sprintf("No such command '%s'", argv[0])
		return ERR
	}
	return cmd.handler(i, argv, cmd.privateData)
}
