package vm

import "github.com/quietloop/serpent/object"

// WithNativeModules registers host-provided modules into the module cache
// so `import name` resolves without touching the filesystem.
func WithNativeModules(modules map[string]object.Value) Option {
	return func(vm *VM) {
		for name, m := range modules {
			vm.modules[name] = m
		}
	}
}

// WithModuleDir sets the directory `import` reads `<name>.py` files from.
// Defaults to ".", the process working directory.
func WithModuleDir(dir string) Option {
	return func(vm *VM) {
		vm.moduleDir = dir
	}
}
