// Package uuidmod is a native module binding gofrs/uuid. It doubles as
// the reference native class: UUID is registered as a callable constructor
// whose instances expose a `string()` method, demonstrating the host
// native-class path end to end.
package uuidmod

import (
	"github.com/gofrs/uuid"

	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
)

// New builds the flat dict registered as the "uuid" native module: a
// generator function plus the UUID native class's constructor.
func New() map[string]object.Value {
	return map[string]object.Value{
		"v4":   object.NewNativeFunction("uuid.v4", 0, v4Fn),
		"UUID": NewClassConstructor(),
	}
}

func v4Fn(args []object.Value) (object.Value, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Runtimef("uuid.v4: %s", err)
	}
	return object.NewStr(id.String()), nil
}

// NewClassConstructor builds the NativeClass bound to the "UUID" name:
// calling it parses its single string argument and stores the decoded
// uuid.UUID on the backing instance under "_value", readable back out
// through the "string" method. Both the class and the instances it
// returns are native_class values.
func NewClassConstructor() *object.NativeClass {
	methods := map[string]object.Value{
		"string": object.NewNativeFunction("UUID.string", object.Unbounded, uuidString),
	}
	return object.BindNativeClass("UUID", 1, func(self *object.Instance, args []object.Value) error {
		s, ok := args[0].(*object.Str)
		if !ok {
			return errors.Typef("UUID: argument must be str, not %s", args[0].Type())
		}
		id, err := uuid.FromString(s.Value)
		if err != nil {
			return errors.Valuef("UUID: %s", err)
		}
		self.Attrs["_value"] = object.NewStr(id.String())
		return nil
	}, methods)
}

// uuidString is UUID.string(self): BindNativeClass's method wrappers
// prepend the backing instance as args[0].
func uuidString(args []object.Value) (object.Value, error) {
	self, ok := args[0].(*object.Instance)
	if !ok {
		return nil, errors.Typef("UUID.string: called on non-instance")
	}
	v, ok := self.Attrs["_value"]
	if !ok {
		return nil, errors.Attrf("UUID instance has no attribute \"_value\"")
	}
	return v, nil
}
