// Package serpent is the embedding entry point: compile one source
// file's worth of code and run it against whatever host bindings the
// caller supplies, wrapping the parser/compiler/vm trio behind a single
// Eval-style call.
package serpent

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/quietloop/serpent/builtins"
	"github.com/quietloop/serpent/compiler"
	"github.com/quietloop/serpent/modules/all"
	"github.com/quietloop/serpent/object"
	"github.com/quietloop/serpent/parser"
	"github.com/quietloop/serpent/vm"
)

// NativeFunc is a host-provided callable registered into the root scope's
// globals, so top-level code sees it directly without an import.
// Arity of object.Unbounded means variadic.
type NativeFunc struct {
	Name  string
	Arity int
	Fn    func(args []object.Value) (object.Value, error)
}

// NativeModule is a host-provided flat dict of Values bound into the
// module cache under Name, so `import Name` resolves without touching the
// filesystem.
type NativeModule struct {
	Name  string
	Attrs map[string]object.Value
}

// NativeClass is a host-provided constructor plus method table. The
// registered class value and every instance its constructor returns are
// object.NativeClass values, so type() reports "native_class" for both.
// Construct initializes the backing Instance's attrs and may fail;
// Methods are ordinary NativeFunctions that receive that Instance as
// their first argument, exactly like a script method's implicit self.
type NativeClass struct {
	Name      string
	Arity     int
	Construct func(inst *object.Instance, args []object.Value) error
	Methods   map[string]object.Value
}

type config struct {
	natives       []NativeFunc
	nativeModules []NativeModule
	nativeClasses []NativeClass
	moduleDir     string
	logger        zerolog.Logger
}

// Option configures an Execute call.
type Option func(*config)

// WithNative registers one host function into the root scope.
func WithNative(n NativeFunc) Option {
	return func(c *config) { c.natives = append(c.natives, n) }
}

// WithNativeModule registers one host module so `import` resolves it
// without reading a file.
func WithNativeModule(m NativeModule) Option {
	return func(c *config) { c.nativeModules = append(c.nativeModules, m) }
}

// WithNativeClass registers one host-defined class constructor.
func WithNativeClass(nc NativeClass) Option {
	return func(c *config) { c.nativeClasses = append(c.nativeClasses, nc) }
}

// WithModuleDir sets the directory `import` reads `<name>.py` files from.
// Defaults to ".".
func WithModuleDir(dir string) Option {
	return func(c *config) { c.moduleDir = dir }
}

// WithDefaultModules registers every native module this repo ships
// (math, os, time, strings, uuid, bcrypt, queries, color) so script code
// can `import` any of them without the embedder wiring each one by
// hand.
func WithDefaultModules() Option {
	return func(c *config) {
		for name, attrs := range all.Modules() {
			c.nativeModules = append(c.nativeModules, NativeModule{Name: name, Attrs: attrs})
		}
	}
}

// WithLogger sets the logger Execute uses for parse/compile/run tracing.
// Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Execute parses, compiles, and runs one source file's worth of code.
// It returns the value of the module's trailing expression
// statement, or None for an empty module, or the first Error the front
// end or VM raised.
func Execute(source string, opts ...Option) (object.Value, error) {
	cfg := &config{moduleDir: ".", logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}

	globals, nativeModules, err := buildRegistrations(cfg)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug().Int("source_bytes", len(source)).Msg("parsing module")
	mod, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug().Msg("compiling module")
	code, err := compiler.Compile(mod)
	if err != nil {
		return nil, err
	}

	machine := vm.New(builtins.All(),
		vm.WithNativeModules(nativeModules),
		vm.WithModuleDir(cfg.moduleDir),
	)

	cfg.logger.Debug().Msg("running module")
	result, err := machine.RunWithGlobals(code, globals)
	if err != nil {
		cfg.logger.Debug().Err(err).Msg("module execution failed")
		return nil, err
	}
	return result, nil
}

// buildRegistrations turns the embedding options into the plain Value maps
// the VM needs: natives become root-scope globals, native classes become
// callable object.NativeClass globals whose instances expose the method
// table through attribute access, and native modules become module-cache
// entries.
// Name collisions across the three registries are collected rather than
// failing fast on the first one, so a caller sees every conflict at once.
func buildRegistrations(cfg *config) (map[string]object.Value, map[string]object.Value, error) {
	var result *multierror.Error

	globals := map[string]object.Value{}
	for _, n := range cfg.natives {
		if _, exists := globals[n.Name]; exists {
			result = multierror.Append(result, fmt.Errorf("native %q registered more than once", n.Name))
			continue
		}
		globals[n.Name] = object.NewNativeFunction(n.Name, n.Arity, n.Fn)
	}

	for _, nc := range cfg.nativeClasses {
		if _, exists := globals[nc.Name]; exists {
			result = multierror.Append(result, fmt.Errorf("native class %q collides with a registered native", nc.Name))
			continue
		}
		globals[nc.Name] = object.BindNativeClass(nc.Name, nc.Arity, nc.Construct, nc.Methods)
	}

	nativeModules := map[string]object.Value{}
	for _, m := range cfg.nativeModules {
		if _, exists := nativeModules[m.Name]; exists {
			result = multierror.Append(result, fmt.Errorf("native module %q registered more than once", m.Name))
			continue
		}
		nativeModules[m.Name] = object.NewNativeModule(m.Name, m.Attrs)
	}

	if result != nil {
		return nil, nil, result.ErrorOrNil()
	}
	return globals, nativeModules, nil
}
