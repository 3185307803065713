package object

import (
	"fmt"

	"github.com/quietloop/serpent/errors"
)

// Class is a user-defined class produced by executing a ClassDef's body in
// a sub-VM and taking its resulting locals as the method table.
// Bases is reserved for single inheritance; the test surface does not
// require it.
type Class struct {
	Name    string
	Methods map[string]Value
	Bases   []*Class
}

func NewClass(name string, methods map[string]Value) *Class {
	return &Class{Name: name, Methods: methods}
}

func (c *Class) Type() Type { return ClassType }
func (c *Class) Inspect() string { return fmt.Sprintf("<class %s>", c.Name) }
func (c *Class) Truthy() bool { return true }
func (c *Class) Equals(other Value) bool {
	o, ok := other.(*Class)
	return ok && c == o
}

// Method looks up a method by name, including reserved (future) base
// classes.
func (c *Class) Method(name string) (Value, bool) {
	if v, ok := c.Methods[name]; ok {
		return v, true
	}
	for _, base := range c.Bases {
		if v, ok := base.Method(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Instance is a shared, mutable attribute bag pointing at the Class it was
// constructed from.
type Instance struct {
	Class *Class
	Attrs map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Attrs: map[string]Value{}}
}

func (i *Instance) Type() Type { return InstanceType }
func (i *Instance) Inspect() string { return fmt.Sprintf("<%s instance>", i.Class.Name) }
func (i *Instance) Truthy() bool { return true }
func (i *Instance) Equals(other Value) bool {
	o, ok := other.(*Instance)
	return ok && i == o
}

// GetAttr resolves an instance attribute: first the instance's own attrs,
// then the class's method table. It does not synthesize bound
// methods; that is the VM's job since binding needs the call machinery.
func (i *Instance) GetAttr(name string) (Value, bool) {
	if v, ok := i.Attrs[name]; ok {
		return v, true
	}
	if v, ok := i.Class.Method(name); ok {
		return v, true
	}
	return nil, false
}

func (i *Instance) SetAttr(name string, v Value) error {
	i.Attrs[name] = v
	return nil
}

// NativeClass is a host-provided class registered through the embedding
// API: a callable constructor plus a method table reachable via attribute
// access on the instances the constructor returns.
type NativeClass struct {
	Name      string
	Construct *NativeFunction
	Methods   map[string]Value
}

func NewNativeClass(name string, construct *NativeFunction, methods map[string]Value) *NativeClass {
	return &NativeClass{Name: name, Construct: construct, Methods: methods}
}

func (c *NativeClass) Type() Type { return NativeClassType }
func (c *NativeClass) Inspect() string { return fmt.Sprintf("<native class %s>", c.Name) }
func (c *NativeClass) Truthy() bool { return true }
func (c *NativeClass) Equals(other Value) bool {
	o, ok := other.(*NativeClass)
	return ok && c == o
}

func (c *NativeClass) GetAttr(name string) (Value, bool) {
	v, ok := c.Methods[name]
	return v, ok
}

// BindNativeClass assembles a host-provided class into its runtime shape:
// a callable NativeClass registered under name. Calling it allocates a
// backing Instance, runs init to populate the instance's attrs, and
// returns an instance-shaped NativeClass — Construct is nil, and the
// method table holds wrappers that prepend the backing Instance as the
// method's first argument, the same self convention script methods use.
// Both the class value and every instance it returns report "native_class"
// from type().
func BindNativeClass(name string, arity int, init func(self *Instance, args []Value) error, methods map[string]Value) *NativeClass {
	class := NewClass(name, methods)
	construct := NewNativeFunction(name, arity, func(args []Value) (Value, error) {
		self := NewInstance(class)
		if err := init(self, args); err != nil {
			return nil, err
		}
		bound := make(map[string]Value, len(methods))
		for mname, m := range methods {
			fn, ok := m.(*NativeFunction)
			if !ok {
				bound[mname] = m
				continue
			}
			bound[mname] = NewNativeFunction(fn.Name, Unbounded, func(margs []Value) (Value, error) {
				return fn.Call(append([]Value{self}, margs...))
			})
		}
		return &NativeClass{Name: name, Methods: bound}, nil
	})
	return NewNativeClass(name, construct, methods)
}

// TypeValue is produced by the type() builtin: a value carrying only a
// type-name string.
type TypeValue struct {
	Name string
}

func NewTypeValue(name string) *TypeValue {
	return &TypeValue{Name: name}
}

func (t *TypeValue) Type() Type { return TypeType }
func (t *TypeValue) Inspect() string { return fmt.Sprintf("<type %s>", t.Name) }
func (t *TypeValue) Truthy() bool { return true }
func (t *TypeValue) Equals(other Value) bool {
	o, ok := other.(*TypeValue)
	return ok && t.Name == o.Name
}

// TypeNameOf returns the type() builtin's name for any Value variant,
// including the native/host-provided ones.
func TypeNameOf(v Value) string {
	switch v.(type) {
	case *Int:
		return "int"
	case *Float:
		return "float"
	case *Bool:
		return "bool"
	case *Str:
		return "str"
	case *Nil:
		return "NoneType"
	case *List:
		return "list"
	case *Dict:
		return "dict"
	case *Tuple:
		return "tuple"
	case *Set:
		return "set"
	case *NativeFunction:
		return "native_function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	case *Module:
		return "module"
	case *NativeModule:
		return "native_module"
	case *NativeClass:
		return "native_class"
	case *TypeValue:
		return "type"
	default:
		return string(v.Type())
	}
}

// RequireArity checks an argument count against an expected arity, honoring
// the Unbounded sentinel for variadic natives.
func RequireArity(name string, arity, got int) error {
	if arity == Unbounded {
		return nil
	}
	if got != arity {
		return errors.Typef("%s() takes %d argument(s) but %d were given", name, arity, got)
	}
	return nil
}
