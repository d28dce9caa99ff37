// Package object defines golox's runtime value representation: a Go
// interface{} holding nil, bool, float64, string, or a callable.Callable.
package object

import (
	"strconv"
)

// stringer is the minimal surface Stringify needs from a callable value,
// kept local to avoid an import cycle between object and callable.
type stringer interface {
	String() string
}

// uninitializedMarker is the distinguished value bound by "var a;" with no
// initializer. Reading it is a runtime error, not nil.
type uninitializedMarker struct{}

// Uninitialized is the sentinel value for a declared-but-unassigned
// variable.
var Uninitialized = uninitializedMarker{}

// IsUninitialized reports whether v is the Uninitialized sentinel.
func IsUninitialized(v interface{}) bool {
	_, ok := v.(uninitializedMarker)
	return ok
}

// Truthy reports whether v counts as true in a condition: nil and false
// are falsey; everything else, including 0 and "", is truthy.
func Truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal is a total, symmetric equality: nil == nil is true; any other
// cross-kind comparison is false; same-kind values compare by their
// natural Go equality.
func Equal(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify renders a value the way print and the REPL echo display it:
// nil prints as "nil", booleans print as "true"/"false", strings print
// unquoted, and numbers use the shortest round-tripping decimal form.
func Stringify(v interface{}) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case stringer:
		return val.String()
	default:
		return ""
	}
}
