// value.go — the runtime value model.
//
// Grounded on runtime.cpp for semantics (ObjectHolder/Object/IsTrue/Print)
// and on the teacher's tagged Value{Tag,Data} shape (interpreter.go) for the
// Go mechanics. The C++ split between Object (payload) and ObjectHolder
// (owning/sharing smart pointer around it) collapses here into a single
// struct: Number/String/Bool are copied by Go's native value semantics,
// while a ClassInstance is carried by a *Instance pointer so copying a
// Value around — exactly what happens when `self` is bound or a NewInstance
// result is returned — shares the same underlying instance with no extra
// indirection type needed.
package mython

import (
	"fmt"
	"io"
	"strings"
)

// Kind is the discriminant of a Value.
type Kind int

const (
	KindNone Kind = iota
	KindNumber
	KindString
	KindBool
	KindClass
	KindInstance
)

// Value is the universal runtime carrier. It doubles as the C++ original's
// ObjectHolder: KindNone is the None holder (a holder with no referent).
type Value struct {
	Kind     Kind
	Num      int64
	Str      string
	Bool     bool
	Class    *Class
	Instance *Instance
}

// None is the absent value.
var None = Value{Kind: KindNone}

// Number wraps a signed machine-word integer.
func Number(n int64) Value { return Value{Kind: KindNumber, Num: n} }

// Str wraps an owned string.
func Str(s string) Value { return Value{Kind: KindString, Str: s} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// ClassVal wraps a class reference.
func ClassVal(c *Class) Value { return Value{Kind: KindClass, Class: c} }

// InstanceVal wraps a shared reference to a class instance.
func InstanceVal(i *Instance) Value { return Value{Kind: KindInstance, Instance: i} }

// IsNone reports whether v is the None holder.
func (v Value) IsNone() bool { return v.Kind == KindNone }

// Print writes v's textual form to out: None prints as the literal text
// "None"; Bool as True/False; instances print via __str__ if defined, else
// an opaque address-like tag.
func (v Value) Print(out io.Writer, ctx Context) error {
	switch v.Kind {
	case KindNone:
		_, err := io.WriteString(out, "None")
		return err
	case KindNumber:
		_, err := fmt.Fprintf(out, "%d", v.Num)
		return err
	case KindString:
		_, err := io.WriteString(out, v.Str)
		return err
	case KindBool:
		if v.Bool {
			_, err := io.WriteString(out, "True")
			return err
		}
		_, err := io.WriteString(out, "False")
		return err
	case KindClass:
		_, err := fmt.Fprintf(out, "Class %s", v.Class.Name)
		return err
	case KindInstance:
		return v.Instance.Print(out, ctx)
	default:
		_, err := io.WriteString(out, "None")
		return err
	}
}

// Format renders v the way the Stringify node does: pipe Print into a
// buffer and return the text.
func Format(v Value, ctx Context) (string, error) {
	var b strings.Builder
	if err := v.Print(&b, ctx); err != nil {
		return "", err
	}
	return b.String(), nil
}

// IsTrue reports a value's truthiness. There is no method hook: class
// instances, None, and Class values are always false.
func IsTrue(v Value) bool {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Num != 0
	case KindString:
		return v.Str != ""
	default:
		return false
	}
}
