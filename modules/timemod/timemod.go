// Package timemod is a native module binding Go's time package:
// wall-clock access and a sleep function.
package timemod

import (
	"time"

	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
)

// New builds the flat dict registered as the "time" native module.
func New() map[string]object.Value {
	return map[string]object.Value{
		"now":   object.NewNativeFunction("time.now", 0, nowFn),
		"sleep": object.NewNativeFunction("time.sleep", 1, sleepFn),
	}
}

func nowFn(args []object.Value) (object.Value, error) {
	return object.NewFloat(float64(time.Now().UnixNano()) / 1e9), nil
}

func sleepFn(args []object.Value) (object.Value, error) {
	seconds, err := toFloat(args[0])
	if err != nil {
		return nil, err
	}
	time.Sleep(time.Duration(seconds * float64(time.Second)))
	return object.NilValue, nil
}

func toFloat(v object.Value) (float64, error) {
	switch n := v.(type) {
	case *object.Int:
		return float64(n.Value), nil
	case *object.Float:
		return n.Value, nil
	default:
		return 0, errors.Typef("time.sleep: argument must be int or float, not %s", v.Type())
	}
}
