// Package colormod is a native module binding fatih/color so script code
// can colorize strings for terminal output the same way the CLI colors
// its own error text.
package colormod

import (
	"github.com/fatih/color"

	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
)

// New builds the flat dict registered as the "color" native module: one
// native function per named foreground color, each wrapping its argument
// in the color's ANSI escape sequence and returning a plain Str.
func New() map[string]object.Value {
	return map[string]object.Value{
		"red":    object.NewNativeFunction("color.red", 1, wrap(color.FgRed)),
		"green":  object.NewNativeFunction("color.green", 1, wrap(color.FgGreen)),
		"yellow": object.NewNativeFunction("color.yellow", 1, wrap(color.FgYellow)),
		"blue":   object.NewNativeFunction("color.blue", 1, wrap(color.FgBlue)),
		"bold":   object.NewNativeFunction("color.bold", 1, wrap(color.Bold)),
	}
}

func wrap(attr color.Attribute) func([]object.Value) (object.Value, error) {
	c := color.New(attr)
	return func(args []object.Value) (object.Value, error) {
		s, ok := args[0].(*object.Str)
		if !ok {
			return nil, errors.Typef("color: argument must be str, not %s", args[0].Type())
		}
		return object.NewStr(c.Sprint(s.Value)), nil
	}
}
