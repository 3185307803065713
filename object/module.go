package object

import "fmt"

// Module is a shared, mutable attribute bag created by running a source
// file's compiled code and capturing its resulting locals.
type Module struct {
	Name  string
	Attrs map[string]Value
}

func NewModule(name string, attrs map[string]Value) *Module {
	return &Module{Name: name, Attrs: attrs}
}

func (m *Module) Type() Type { return ModuleType }
func (m *Module) Inspect() string { return fmt.Sprintf("<module %s>", m.Name) }
func (m *Module) Truthy() bool { return true }
func (m *Module) Equals(other Value) bool {
	o, ok := other.(*Module)
	return ok && m == o
}

func (m *Module) GetAttr(name string) (Value, bool) {
	v, ok := m.Attrs[name]
	return v, ok
}

// NativeModule is a host-provided attribute bag registered through the
// embedding API's native_modules argument. Unlike Module it is
// immutable once built: native modules are not mutated by running script
// code.
type NativeModule struct {
	Name  string
	Attrs map[string]Value
}

func NewNativeModule(name string, attrs map[string]Value) *NativeModule {
	return &NativeModule{Name: name, Attrs: attrs}
}

func (m *NativeModule) Type() Type { return NativeModuleType }
func (m *NativeModule) Inspect() string { return fmt.Sprintf("<native module %s>", m.Name) }
func (m *NativeModule) Truthy() bool { return true }
func (m *NativeModule) Equals(other Value) bool {
	o, ok := other.(*NativeModule)
	return ok && m == o
}

func (m *NativeModule) GetAttr(name string) (Value, bool) {
	v, ok := m.Attrs[name]
	return v, ok
}
