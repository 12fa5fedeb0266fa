// Package runtime holds golox's runtime object model: the Value sum type,
// the Callable protocol, lexical Environments, and the concrete callables
// (native functions, user functions, classes, instances) that implement it.
package runtime

import (
	"fmt"
	"strconv"
)

// Value is the sum type every golox runtime value belongs to: nil,
// boolean, number, string, callable, or instance.
type Value interface {
	// Type names the value's kind, used only for diagnostics.
	Type() string
	// String renders the value the way a `print` statement would.
	String() string
}

// Nil is the single nil value. There is exactly one instance, NilValue.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// NilValue is the shared Nil instance; comparisons and returns use it so
// nil-ness can be checked with a type assertion instead of allocating.
var NilValue Value = Nil{}

// Bool wraps a boolean runtime value.
type Bool bool

func (b Bool) Type() string { return "boolean" }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number wraps a float64 runtime value. Lox has a single numeric type.
type Number float64

func (Number) Type() string { return "number" }

// String renders the number in its shortest decimal form; integral values
// render as bare integers, with no trailing ".0".
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// String is golox's string runtime value, kept distinct from Go's string
// so it satisfies Value without wrapper allocation games at call sites.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// Truthy implements Lox's truthiness rule: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(val)
	default:
		return true
	}
}

// Equal implements structural equality for `==`/`!=`: nil equals nil,
// otherwise values must share a type and compare equal under it.
func Equal(a, b Value) bool {
	_, aNil := a.(Nil)
	_, bNil := b.(Nil)
	if aNil || bNil {
		return aNil && bNil
	}

	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify renders any Value for `print` / string-concatenation: functions
// as "<fn name>", classes as their name, instances as "<class> instance".
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// TypeName is a small helper for error messages that must name a Go-level
// Value whose concrete type isn't known to the caller.
func TypeName(v Value) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
