package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the runtime tagged sum described in SPEC_FULL.md §3. Go has no
// sum types, so — matching the teacher's grotskyNumber/grotskyString/
// grotskyBool/grotskyList/grotskyObject shape — each variant is its own Go
// type and Value is the empty interface all of them satisfy. A Nil value is
// represented by the Go nil interface.
type Value interface{}

// Number is the Number variant: a 64-bit float.
type Number float64

// String is the String variant: immutable text.
type String string

// Bool is the Bool variant.
type Bool bool

// Array is the Array variant: a mutable ordered sequence of Value, shared
// by reference. It is always held as *Array so aliases observe mutation,
// matching grotskyList's slice-sharing in the teacher repo but made
// reference-safe across append/grow.
type Array struct {
	Elements []Value
}

// Callable is satisfied by function and class values.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, arguments []Value, paren Token) Value
	String() string
}

func isTruthy(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case Bool:
		return bool(val)
	case Number:
		return val != 0
	case *Array:
		return len(val.Elements) > 0
	default:
		return true
	}
}

// valuesEqual implements the equality rules of SPEC_FULL.md §3: Number/
// String/Bool compare by value, Nil equals only Nil, Array/Callable/
// Instance compare by reference identity.
func valuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
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
	case *Array:
		bv, ok := b.(*Array)
		return ok && av == bv
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av == bv
	default:
		// Callable values (functions, classes) compare by identity too.
		return a == b
	}
}

// stringify renders a Value the way the print statement does (SPEC_FULL.md
// §4.4 "Print formatting").
func stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case Bool:
		if val {
			return "true"
		}
		return "false"
	case Number:
		return formatNumber(float64(val))
	case String:
		return string(val)
	case *Array:
		parts := make([]string, len(val.Elements))
		for i, el := range val.Elements {
			parts[i] = stringify(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Callable:
		return val.String()
	case *Instance:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
