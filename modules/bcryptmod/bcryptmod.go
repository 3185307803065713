// Package bcryptmod is a native module binding golang.org/x/crypto/bcrypt
// for password hashing.
package bcryptmod

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
)

// New builds the flat dict registered as the "bcrypt" native module.
func New() map[string]object.Value {
	return map[string]object.Value{
		"hash":    object.NewNativeFunction("bcrypt.hash", 1, hashFn),
		"compare": object.NewNativeFunction("bcrypt.compare", 2, compareFn),
	}
}

func hashFn(args []object.Value) (object.Value, error) {
	pw, ok := args[0].(*object.Str)
	if !ok {
		return nil, errors.Typef("bcrypt.hash: argument must be str, not %s", args[0].Type())
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw.Value), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Runtimef("bcrypt.hash: %s", err)
	}
	return object.NewStr(string(hashed)), nil
}

func compareFn(args []object.Value) (object.Value, error) {
	hashStr, ok := args[0].(*object.Str)
	if !ok {
		return nil, errors.Typef("bcrypt.compare: first argument must be str, not %s", args[0].Type())
	}
	pw, ok := args[1].(*object.Str)
	if !ok {
		return nil, errors.Typef("bcrypt.compare: second argument must be str, not %s", args[1].Type())
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashStr.Value), []byte(pw.Value))
	return object.NewBool(err == nil), nil
}
