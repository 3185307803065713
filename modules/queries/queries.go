// Package queries is a native module binding jmespath/go-jmespath so
// script code can query a Dict/List value tree with a JMESPath
// expression string.
package queries

import (
	"github.com/jmespath/go-jmespath"

	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
)

// New builds the flat dict registered as the "queries" native module.
func New() map[string]object.Value {
	return map[string]object.Value{
		"search": object.NewNativeFunction("queries.search", 2, searchFn),
	}
}

func searchFn(args []object.Value) (object.Value, error) {
	expr, ok := args[0].(*object.Str)
	if !ok {
		return nil, errors.Typef("queries.search: first argument must be str, not %s", args[0].Type())
	}
	result, err := jmespath.Search(expr.Value, toGo(args[1]))
	if err != nil {
		return nil, errors.Valuef("queries.search: %s", err)
	}
	return fromGo(result), nil
}

// toGo converts a Value tree into the plain interface{} shape jmespath
// expects: map[string]interface{} for Dict, []interface{} for List/Tuple,
// and the obvious Go scalar for everything else.
func toGo(v object.Value) interface{} {
	switch val := v.(type) {
	case *object.Dict:
		out := make(map[string]interface{}, len(val.Keys()))
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			out[k] = toGo(child)
		}
		return out
	case *object.List:
		out := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = toGo(val.At(i))
		}
		return out
	case *object.Tuple:
		out := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = toGo(val.At(i))
		}
		return out
	case *object.Str:
		return val.Value
	case *object.Int:
		return val.Value
	case *object.Float:
		return val.Value
	case *object.Bool:
		return val.Value
	default:
		return nil
	}
}

// fromGo is toGo's inverse, applied to whatever jmespath.Search returns.
func fromGo(v interface{}) object.Value {
	switch val := v.(type) {
	case map[string]interface{}:
		d := object.NewDict()
		for k, child := range val {
			d.Set(k, fromGo(child))
		}
		return d
	case []interface{}:
		items := make([]object.Value, len(val))
		for i, child := range val {
			items[i] = fromGo(child)
		}
		return object.NewList(items)
	case string:
		return object.NewStr(val)
	case int64:
		return object.NewInt(val)
	case int:
		return object.NewInt(int64(val))
	case float64:
		return object.NewFloat(val)
	case bool:
		return object.NewBool(val)
	case nil:
		return object.NilValue
	default:
		return object.NilValue
	}
}
