package vm

import (
	"os"
	"path/filepath"

	"github.com/quietloop/serpent/bytecode"
	"github.com/quietloop/serpent/compiler"
	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
	"github.com/quietloop/serpent/parser"
)

// Run executes a compiled module's root CodeObject and returns the value
// its trailing expression statement (or implicit None) produced. The root
// frame's locals double as its globals, exactly like a source file's own
// top-level scope.
func (vm *VM) Run(code *bytecode.CodeObject) (object.Value, error) {
	return vm.RunWithGlobals(code, nil)
}

// RunWithGlobals is Run with the root scope pre-seeded, used to expose
// embedder-supplied native functions directly to top-level code without
// an import.
func (vm *VM) RunWithGlobals(code *bytecode.CodeObject, seed map[string]object.Value) (object.Value, error) {
	locals := make(map[string]object.Value, len(seed))
	for k, v := range seed {
		locals[k] = v
	}
	result, _, err := vm.execCode(code, locals, locals)
	return result, err
}

// loadModule implements the Import family's shared lookup/compile/execute
// path. A name already in vm.modules — whether a host-registered
// NativeModule or a previously compiled Module — short-circuits
// straight to the cache. Otherwise `<name>.py` is read from the module
// directory, compiled with a fresh Compiler, and run in a sub-VM that
// shares this VM's module cache by reference so transitive imports
// memoize across the whole import graph.
func (vm *VM) loadModule(name string) (object.Value, error) {
	if m, ok := vm.modules[name]; ok {
		return m, nil
	}

	path := filepath.Join(vm.moduleDir, name+".py")
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ModuleNotFoundf("no module named %q", name)
	}

	mod, err := parser.Parse(string(src))
	if err != nil {
		return nil, err
	}
	code, err := compiler.Compile(mod)
	if err != nil {
		return nil, err
	}

	sub := &VM{builtins: vm.builtins, modules: vm.modules, moduleDir: vm.moduleDir}
	locals := map[string]object.Value{}
	if _, _, err := sub.execCode(code, locals, locals); err != nil {
		return nil, err
	}

	m := object.NewModule(name, locals)
	vm.modules[name] = m
	return m, nil
}
