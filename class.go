// class.go — class table: named classes with a single optional parent and
// an ordered method list.
//
// Grounded on runtime.cpp's Class/GetMethod for semantics (first match wins,
// recursing into the parent; arity is not part of lookup, only of Call).
package mython

// Method is a named, ordered list of formal parameters plus a body.
type Method struct {
	Name   string
	Params []string
	Body   Statement
}

// Class is a named, single-inheritance class. Classes are registered once,
// by ClassDefinition executing at the point the class statement runs, and
// are owned by whichever Env they were defined in; they are never mutated
// or moved after that.
type Class struct {
	Name    string
	Parent  *Class
	Methods []*Method
}

// NewClass constructs a class with the given methods, in declaration order.
func NewClass(name string, parent *Class, methods []*Method) *Class {
	return &Class{Name: name, Parent: parent, Methods: methods}
}

// LookupMethod searches the class's own methods for the first whose name
// matches; failing that, it recurses into the parent. Arity is not checked
// here (that happens in Instance.Call).
func (c *Class) LookupMethod(name string) *Method {
	for cls := c; cls != nil; cls = cls.Parent {
		for _, m := range cls.Methods {
			if m.Name == name {
				return m
			}
		}
	}
	return nil
}

// HasMethod reports whether the class has a method of the given name and
// exact arity, the question the comparisons, Arith, NewInstance and
// Instance.Print ask before deciding to invoke a special method.
func (c *Class) HasMethod(name string, arity int) bool {
	m := c.LookupMethod(name)
	return m != nil && len(m.Params) == arity
}
