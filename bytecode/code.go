// Package bytecode defines the compiled unit the compiler produces and the
// VM executes: a constant pool, a name pool, a linear instruction sequence,
// and nested code objects for function/class bodies.
package bytecode

import (
	"fmt"
	"strings"

	"github.com/quietloop/serpent/object"
	"github.com/quietloop/serpent/op"
)

// Instruction is one decoded opcode plus its operands. Operand meaning
// depends on the opcode: a pool index into Consts or Names, an absolute
// index into Instructions (a jump target), or a plain count (e.g. Call's
// argc). Instruction addresses used by jumps are indices into the
// Instructions slice they belong to; jumps never cross CodeObject
// boundaries.
type Instruction struct {
	Op       op.Code
	Operands []int
}

// CodeObject is the immutable compiled unit produced by the compiler.
// It is created once and never mutated after compilation finishes.
type CodeObject struct {
	Name         string
	Consts       []object.Value
	Names        []string
	Instructions []Instruction
	Nested       []*CodeObject
}

func NewCodeObject(name string) *CodeObject {
	return &CodeObject{Name: name}
}

// Len reports the number of instructions, i.e. the one-past-the-end
// address that causes end-of-code fallthrough.
func (c *CodeObject) Len() int {
	return len(c.Instructions)
}

func (c *CodeObject) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CodeObject(%s)\n", c.Name)
	for i, instr := range c.Instructions {
		fmt.Fprintf(&b, "%4d %-16s %v\n", i, instr.Op, instr.Operands)
	}
	return b.String()
}

// Function is a user-defined function compiled to bytecode. The
// captured environment is a snapshot of the defining scope's globals,
// taken by the VM when the owning Def instruction executes; it supplies
// the callee's globals regardless of where the function is later called
// from.
type Function struct {
	Name            string
	Arity           int
	Code            *CodeObject
	CapturedGlobals map[string]object.Value
}

func NewFunction(name string, arity int, code *CodeObject, capturedGlobals map[string]object.Value) *Function {
	return &Function{Name: name, Arity: arity, Code: code, CapturedGlobals: capturedGlobals}
}

func (f *Function) Type() object.Type { return object.FunctionType }

func (f *Function) Inspect() string {
	if f.Name == "" {
		return "<function>"
	}
	return fmt.Sprintf("<function %s>", f.Name)
}

func (f *Function) Truthy() bool { return true }

func (f *Function) Equals(other object.Value) bool {
	o, ok := other.(*Function)
	return ok && f == o
}
