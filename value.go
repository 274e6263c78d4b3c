package picol

import (
	"fmt"
	"strconv"
)

// Value is a read-only, typed view of a plain picol string — an
// evaluation result or a variable binding. picol values have no internal
// representation beyond bytes (spec.md section 3); Value only adds
// Go-side accessors on top of that single string, the way
// feather.stringValue exposes typed conversions over a TCL string
// without picol's language itself gaining a type system.
type Value string

// String returns the underlying text.
func (v Value) String() string {
	return string(v)
}

// Int parses the value as a base-10 integer. Unlike the lenient parsing
// the arithmetic builtins use internally, this returns an error on a
// malformed value, since callers reading a result typically want to know
// about that.
func (v Value) Int() (int64, error) {
	return strconv.ParseInt(string(v), 10, 64)
}

// Bool reports the value's truthiness using the same words spec.md's
// comparison builtins produce ("0"/"1"), plus the common textual forms a
// host might set via SetVar.
func (v Value) Bool() (bool, error) {
	switch string(v) {
	case "1", "true", "True", "TRUE", "yes", "Yes", "YES", "on", "On", "ON":
		return true, nil
	case "0", "false", "False", "FALSE", "no", "No", "NO", "off", "Off", "OFF":
		return false, nil
	default:
		return false, fmt.Errorf("expected boolean but got %q", string(v))
	}
}

// IsEmpty reports whether the value is the empty string.
func (v Value) IsEmpty() bool {
	return v == ""
}

// ResultValue returns the interpreter's current result as a Value.
func (i *Interp) ResultValue() Value {
	return Value(i.Result)
}
