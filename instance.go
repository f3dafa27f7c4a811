// instance.go — class instances and method dispatch.
//
// Grounded on runtime.cpp's ClassInstance::Call/HasMethod/Print: look up the
// method (erroring on missing-or-wrong-arity), bind a fresh closure with
// self plus the formal parameters, execute the body, and return whatever
// the body yields.
package mython

import (
	"fmt"
	"io"
)

// instanceTag renders the opaque, address-like fallback text printed for an
// instance that has no __str__.
func instanceTag(ins *Instance) string {
	return fmt.Sprintf("<%s object at %p>", ins.Class.Name, ins)
}

// special method names — magic protocol hooks the evaluator recognizes by
// naming convention alone, not a type-system feature.
const (
	methodStr  = "__str__"
	methodEq   = "__eq__"
	methodLt   = "__lt__"
	methodInit = "__init__"
	methodAdd  = "__add__"
)

// Instance is a class instance: a reference to its Class plus a field
// closure. Instances have reference identity — copying a Value that holds
// an *Instance shares the same underlying object.
type Instance struct {
	Class  *Class
	Fields *Env
}

// NewRawInstance allocates an instance bound to cls with an empty field
// closure, without invoking __init__. Callers that need construction
// semantics (running __init__) should use the NewInstance AST node instead;
// this is the lower-level constructor it and tests build on.
func NewRawInstance(cls *Class) *Instance {
	return &Instance{Class: cls, Fields: NewEnv()}
}

// Call resolves name against the instance's class, checks it against args'
// arity, then:
//  1. look up method name; fail with a typed TypeError if no method by that
//     name exists anywhere in the class chain, or if one does but its arity
//     doesn't match len(args);
//  2. build a fresh closure binding self to a shared reference to the
//     instance, then each formal parameter in order;
//  3. evaluate the method body against that closure and ctx;
//  4. the result is whatever Return threw, else None.
func (ins *Instance) Call(name string, args []Value, ctx Context) (Value, error) {
	method := ins.Class.LookupMethod(name)
	if method == nil {
		return Value{}, newTypeError(TypeErrNoMethod,
			"class %s has no method %s", ins.Class.Name, name)
	}
	if len(method.Params) != len(args) {
		return Value{}, newTypeError(TypeErrArity,
			"method %s.%s takes %d arguments, got %d", ins.Class.Name, name, len(method.Params), len(args))
	}

	frame := NewEnv()
	frame.Define("self", InstanceVal(ins))
	for i, param := range method.Params {
		frame.Define(param, args[i])
	}

	return execMethodBody(method.Body, frame, ctx)
}

// HasMethod reports whether the instance's class resolves name at the given
// arity.
func (ins *Instance) HasMethod(name string, arity int) bool {
	return ins.Class.HasMethod(name, arity)
}

// Print calls __str__(0) if present and prints its result; otherwise it
// prints an opaque address-like tag.
func (ins *Instance) Print(out io.Writer, ctx Context) error {
	if ins.HasMethod(methodStr, 0) {
		v, err := ins.Call(methodStr, nil, ctx)
		if err != nil {
			return err
		}
		return v.Print(out, ctx)
	}
	_, err := io.WriteString(out, instanceTag(ins))
	return err
}
