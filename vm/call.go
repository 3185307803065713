package vm

import (
	"github.com/quietloop/serpent/bytecode"
	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
)

// call dispatches a Call opcode's callee. The VM recognizes exactly four
// callable variants — user-defined Function, host NativeFunction,
// user-defined Class (synthesizes an instance), and host NativeClass
// (delegates to its registered constructor) — rather
// than routing through a single Callable interface, matching how the
// compiled Function type itself stays outside that interface.
func (vm *VM) call(callee object.Value, args []object.Value) (object.Value, error) {
	switch fn := callee.(type) {
	case *bytecode.Function:
		return vm.callFunction(fn, args)
	case *object.NativeFunction:
		if err := object.RequireArity(fn.Name, fn.Arity, len(args)); err != nil {
			return nil, err
		}
		return fn.Call(args)
	case *object.Class:
		return vm.instantiate(fn, args)
	case *object.NativeClass:
		// Instance-shaped NativeClass values carry no constructor.
		if fn.Construct == nil {
			return nil, errors.Typef("%s object is not callable", object.TypeNameOf(callee))
		}
		if err := object.RequireArity(fn.Name, fn.Construct.Arity, len(args)); err != nil {
			return nil, err
		}
		return fn.Construct.Call(args)
	default:
		return nil, errors.Typef("%s object is not callable", object.TypeNameOf(callee))
	}
}

func (vm *VM) callFunction(fn *bytecode.Function, args []object.Value) (object.Value, error) {
	if err := object.RequireArity(fn.Name, fn.Arity, len(args)); err != nil {
		return nil, err
	}
	locals := make(map[string]object.Value, len(args))
	for i := 0; i < fn.Arity; i++ {
		locals[fn.Code.Names[i]] = args[i]
	}
	result, _, err := vm.execCode(fn.Code, locals, fn.CapturedGlobals)
	return result, err
}

// instantiate runs a class's synthesized constructor: allocate an empty
// Instance, then call its __init__ method (if any) bound to that instance
// and discard its return value.
func (vm *VM) instantiate(class *object.Class, args []object.Value) (object.Value, error) {
	instance := object.NewInstance(class)
	init, ok := class.Method("__init__")
	if !ok {
		if err := object.RequireArity(class.Name, 0, len(args)); err != nil {
			return nil, err
		}
		return instance, nil
	}
	bound := vm.bindMethod(init, instance)
	if _, err := bound.Call(args); err != nil {
		return nil, err
	}
	return instance, nil
}

// bindMethod wraps a class method value as a NativeFunction that prepends
// the instance as the leading argument, the way `self` is threaded
// through in the source language. Bound methods are synthesized
// NativeFunctions closing over (function, instance), not a dedicated
// BoundMethod variant.
func (vm *VM) bindMethod(method object.Value, self *object.Instance) *object.NativeFunction {
	switch m := method.(type) {
	case *bytecode.Function:
		return object.NewNativeFunction(m.Name, object.Unbounded, func(args []object.Value) (object.Value, error) {
			return vm.callFunction(m, append([]object.Value{self}, args...))
		})
	case *object.NativeFunction:
		return object.NewNativeFunction(m.Name, object.Unbounded, func(args []object.Value) (object.Value, error) {
			return m.Call(append([]object.Value{self}, args...))
		})
	default:
		return object.NewNativeFunction("<method>", object.Unbounded, func(args []object.Value) (object.Value, error) {
			return nil, errors.Typef("%s object is not callable", object.TypeNameOf(method))
		})
	}
}

// loadAttr resolves LoadAttr for every attribute-bearing variant. Instance
// is handled first and specially: its own attrs are returned as plain
// values, but a name found only on its class is bound to the instance
// before being returned, since GetAttr alone cannot tell the two cases
// apart.
func (vm *VM) loadAttr(obj object.Value, name string) (object.Value, error) {
	if inst, ok := obj.(*object.Instance); ok {
		if v, ok := inst.Attrs[name]; ok {
			return v, nil
		}
		if m, ok := inst.Class.Method(name); ok {
			return vm.bindMethod(m, inst), nil
		}
		return nil, errors.Attrf("%s instance has no attribute %q", inst.Class.Name, name)
	}
	if getter, ok := obj.(object.AttrGetter); ok {
		if v, ok := getter.GetAttr(name); ok {
			return v, nil
		}
		return nil, errors.Attrf("%s object has no attribute %q", object.TypeNameOf(obj), name)
	}
	return nil, errors.Attrf("%s object has no attributes", object.TypeNameOf(obj))
}
