// Package errors defines the closed set of error categories produced by the
// lexer, parser, compiler, and virtual machine. Every error that
// escapes to an embedder is one of these categories; there is no
// try/except surface, so the first Error aborts execution.
package errors

import "fmt"

// Category is one of the fixed error kinds the interpreter can raise.
type Category string

const (
	SyntaxError         Category = "SyntaxError"
	NameError           Category = "NameError"
	TypeError           Category = "TypeError"
	ValueError          Category = "ValueError"
	IndexError          Category = "IndexError"
	KeyError            Category = "KeyError"
	AttributeError      Category = "AttributeError"
	ImportError         Category = "ImportError"
	ModuleNotFoundError Category = "ModuleNotFoundError"
	RuntimeError        Category = "RuntimeError"
)

// Error is the concrete error value returned out of the front end, the
// compiler, and the VM. It implements the standard error interface so it
// composes with fmt.Errorf's %w and errors.As/errors.Is.
type Error struct {
	Category Category
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// New builds an Error of the given category.
func New(cat Category, format string, args ...interface{}) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...)}
}

func Syntaxf(format string, args ...interface{}) *Error { return New(SyntaxError, format, args...) }
func Namef(format string, args ...interface{}) *Error { return New(NameError, format, args...) }
func Typef(format string, args ...interface{}) *Error { return New(TypeError, format, args...) }
func Valuef(format string, args ...interface{}) *Error { return New(ValueError, format, args...) }
func Indexf(format string, args ...interface{}) *Error { return New(IndexError, format, args...) }
func Keyf(format string, args ...interface{}) *Error { return New(KeyError, format, args...) }
func Attrf(format string, args ...interface{}) *Error { return New(AttributeError, format, args...) }
func Importf(format string, args ...interface{}) *Error { return New(ImportError, format, args...) }
func ModuleNotFoundf(format string, args ...interface{}) *Error {
	return New(ModuleNotFoundError, format, args...)
}
func Runtimef(format string, args ...interface{}) *Error { return New(RuntimeError, format, args...) }

// Is reports whether err is an *Error of the given category.
func Is(err error, cat Category) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Category == cat
}
