package picol

import "testing"

func tokens(source string) []string {
	p := newParser(source)
	var kinds []string
	for {
		p.next()
		switch p.kind {
		case Sep:
			kinds = append(kinds, "Sep:"+p.token())
		case Eol:
			kinds = append(kinds, "Eol")
		case Eof:
			kinds = append(kinds, "Eof")
			return kinds
		case Str:
			kinds = append(kinds, "Str:"+p.token())
		case Esc:
			kinds = append(kinds, "Esc:"+p.token())
		case Cmd:
			kinds = append(kinds, "Cmd:"+p.token())
		case Var:
			kinds = append(kinds, "Var:"+p.token())
		}
	}
}

func TestParserSimpleWords(t *testing.T) {
	got := tokens("set x 1")
	want := []string{"Esc:set", "Sep: ", "Esc:x", "Sep: ", "Esc:1", "Eol", "Eof"}
	assertTokens(t, got, want)
}

func TestParserBraceString(t *testing.T) {
	got := tokens("set x {hello world}")
	want := []string{"Esc:set", "Sep: ", "Esc:x", "Sep: ", "Str:hello world", "Eol", "Eof"}
	assertTokens(t, got, want)
}

func TestParserCommandSubstitution(t *testing.T) {
	got := tokens("set x [+ 1 2]")
	want := []string{"Esc:set", "Sep: ", "Esc:x", "Sep: ", "Cmd:+ 1 2", "Eol", "Eof"}
	assertTokens(t, got, want)
}

func TestParserVarSubstitution(t *testing.T) {
	got := tokens("puts $x")
	want := []string{"Esc:puts", "Sep: ", "Var:x", "Eol", "Eof"}
	assertTokens(t, got, want)
}

func TestParserCommentOnlyAfterEol(t *testing.T) {
	got := tokens("set x a#b")
	want := []string{"Esc:set", "Sep: ", "Esc:x", "Sep: ", "Esc:a#b", "Eol", "Eof"}
	assertTokens(t, got, want)
}

func TestParserLeadingCommentLine(t *testing.T) {
	got := tokens("# comment\nset x 1")
	want := []string{"Eol", "Esc:set", "Sep: ", "Esc:x", "Sep: ", "Esc:1", "Eol", "Eof"}
	assertTokens(t, got, want)
}

func TestParserSemicolonSeparatesCommands(t *testing.T) {
	got := tokens("set x 1;set y 2")
	want := []string{
		"Esc:set", "Sep: ", "Esc:x", "Sep: ", "Esc:1", "Eol",
		"Esc:set", "Sep: ", "Esc:y", "Sep: ", "Esc:2", "Eol", "Eof",
	}
	assertTokens(t, got, want)
}

func TestParserEmbeddedNewlineInWhitespaceRunIsSwallowed(t *testing.T) {
	// A run of non-graphic bytes that doesn't start with '\n' or ';'
	// absorbs any '\n' it contains instead of emitting a separate Eol,
	// matching original_source/picol.c's picolParseSep(eol=0): its loop
	// condition is a plain !isgraph() check with no early stop at '\n'.
	got := tokens("set x 1  \n  set y 2")
	want := []string{
		"Esc:set", "Sep: ", "Esc:x", "Sep: ", "Esc:1", "Sep:  \n  ",
		"Esc:set", "Sep: ", "Esc:y", "Sep: ", "Esc:2", "Eol", "Eof",
	}
	assertTokens(t, got, want)
}

func assertTokens(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}
