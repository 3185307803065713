// Package object defines the tagged Value model that the compiler, the
// bytecode, and the virtual machine all share.
//
// A Value is one of a fixed set of variants: Int, Float, Bool, Str, Nil,
// List, Dict, Tuple, Set, Function, NativeFunction, Class, Instance,
// Module, NativeModule, NativeClass, Type. Containers (List, Dict, Set,
// Instance, Module) are reference-shared with interior mutability; Tuple is
// value-shared with immutable elements; everything else is a plain
// immutable scalar.
package object

// Type names the concrete variant of a Value. The type() builtin reports
// TypeNameOf's name, which equals Type for every variant except Nil
// (Type "nil", type() name "NoneType").
type Type string

const (
	IntType            Type = "int"
	FloatType          Type = "float"
	BoolType           Type = "bool"
	StrType            Type = "str"
	NilKind            Type = "nil"
	ListType           Type = "list"
	DictType           Type = "dict"
	TupleType          Type = "tuple"
	SetType            Type = "set"
	FunctionType       Type = "function"
	NativeFunctionType Type = "native_function"
	ClassType          Type = "class"
	InstanceType       Type = "instance"
	ModuleType         Type = "module"
	NativeModuleType   Type = "native_module"
	NativeClassType    Type = "native_class"
	TypeType           Type = "type"
)

// Value is the interface every runtime value implements.
type Value interface {
	// Type reports the variant name, e.g. "int" or "list".
	Type() Type

	// Inspect renders the value the way the printer does, used by print()
	// and the disassembler's constant dumps.
	Inspect() string

	// Truthy implements the language's truthiness rules.
	Truthy() bool

	// Equals implements structural equality.
	Equals(other Value) bool
}

// Hashable is implemented by the variants that may be used as a Set element
// or a Dict key: Int, Float, Bool, Str, Nil. Any other variant used as a
// key is a runtime fault.
type Hashable interface {
	Value
	HashKey() HashKey
}

// HashKey is a comparable Go value used to key the Go maps backing Set and
// Dict. Floats hash by bit pattern, so NaN is a usable (if odd) key.
type HashKey struct {
	Type Type
	Val  interface{}
}

// Comparable is implemented by the variants that support Lt/Le/Gt/Ge:
// Int, Float (mixed Int/Float coerces), and Str.
type Comparable interface {
	Value
	Compare(other Value) (int, error)
}

// Callable is implemented by NativeFunction, including the synthesized
// bound-method and native-class constructor/method NativeFunctions. The
// compiled bytecode.Function does not implement it; the VM calls it
// directly.
type Callable interface {
	Value
	Call(args []Value) (Value, error)
}

// AttrGetter is implemented by every variant that supports LoadAttr:
// Instance, Module, NativeModule, NativeClass.
type AttrGetter interface {
	GetAttr(name string) (Value, bool)
}

// AttrSetter is implemented by Instance, the only variant StoreAttr targets.
type AttrSetter interface {
	SetAttr(name string, v Value) error
}

// Indexable is implemented by List, Tuple, Dict for LoadIndex.
type Indexable interface {
	GetIndex(key Value) (Value, error)
}

// IndexSettable is implemented by List and Dict for StoreIndex.
type IndexSettable interface {
	SetIndex(key, v Value) error
}

// Sequence is implemented by List and Tuple, the only iterable variants.
type Sequence interface {
	Len() int
	At(i int) Value
}
