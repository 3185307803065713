// Package vm implements the stack-based virtual machine that executes a
// compiled CodeObject. Each call frame — module top level,
// function call, or class-body sub-execution — runs on its own Go call to
// execCode with its own operand stack, loop-block stack, and iterator
// stack, so nothing leaks across a call boundary; recursion stands in for
// an explicit frame stack.
package vm

import (
	"github.com/quietloop/serpent/bytecode"
	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
	"github.com/quietloop/serpent/op"
)

// VM executes compiled code against a set of builtins and a shared module
// cache. The zero value is not usable; construct with New.
type VM struct {
	builtins  map[string]object.Value
	modules   map[string]object.Value
	moduleDir string
}

// Option configures a VM at construction time.
type Option func(*VM)

// New builds a VM with the given builtins pre-registered. Apply Options to
// add native modules or change the module search directory.
func New(builtins map[string]object.Value, opts ...Option) *VM {
	vm := &VM{
		builtins:  builtins,
		modules:   map[string]object.Value{},
		moduleDir: ".",
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// loopBlock records one active loop's break/continue targets.
// isFor distinguishes a for-loop's block from a while-loop's so Break knows
// whether to also pop the iterator it owns.
type loopBlock struct {
	exitIP     int
	continueIP int
	isFor      bool
}

// iterState is one live GetIter/ForIter cursor over a Sequence.
type iterState struct {
	seq object.Sequence
	idx int
}

func cloneGlobals(m map[string]object.Value) map[string]object.Value {
	out := make(map[string]object.Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// execCode runs one CodeObject to completion against the given locals and
// globals, returning the value Return produced (or the top-of-stack value
// at end-of-code fallthrough, or None if the stack is empty) along with the
// final locals map, which ClassDef uses as a method table.
func (vm *VM) execCode(code *bytecode.CodeObject, locals, globals map[string]object.Value) (object.Value, map[string]object.Value, error) {
	var stack []object.Value
	var loopStack []loopBlock
	var iterStack []*iterState

	push := func(v object.Value) { stack = append(stack, v) }
	pop := func() object.Value {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	popN := func(n int) []object.Value {
		out := make([]object.Value, n)
		for i := n - 1; i >= 0; i-- {
			out[i] = pop()
		}
		return out
	}

	ip := 0
	for ip < len(code.Instructions) {
		instr := code.Instructions[ip]
		next := ip + 1

		switch instr.Op {
		case op.LoadConst:
			push(code.Consts[instr.Operands[0]])

		case op.LoadName:
			name := code.Names[instr.Operands[0]]
			if v, ok := locals[name]; ok {
				push(v)
			} else if v, ok := globals[name]; ok {
				push(v)
			} else if v, ok := vm.builtins[name]; ok {
				push(v)
			} else {
				return nil, nil, errors.Namef("name %q is not defined", name)
			}

		case op.StoreName:
			locals[code.Names[instr.Operands[0]]] = pop()

		case op.LoadGlobal:
			name := code.Names[instr.Operands[0]]
			v, ok := globals[name]
			if !ok {
				return nil, nil, errors.Namef("name %q is not defined", name)
			}
			push(v)

		case op.StoreGlobal:
			globals[code.Names[instr.Operands[0]]] = pop()

		case op.Pop:
			pop()

		case op.Call, op.CallMethod:
			argc := instr.Operands[0]
			args := popN(argc)
			callee := pop()
			result, err := vm.call(callee, args)
			if err != nil {
				return nil, nil, err
			}
			push(result)

		case op.Return:
			return pop(), locals, nil

		case op.Def:
			name := code.Names[instr.Operands[0]]
			arity := instr.Operands[1]
			nested := code.Nested[instr.Operands[2]]
			fn := bytecode.NewFunction(name, arity, nested, cloneGlobals(globals))
			locals[name] = fn

		case op.ClassDef:
			name := code.Names[instr.Operands[0]]
			nested := code.Nested[instr.Operands[1]]
			_, methods, err := vm.execCode(nested, map[string]object.Value{}, globals)
			if err != nil {
				return nil, nil, err
			}
			locals[name] = object.NewClass(name, methods)

		case op.LoadAttr:
			name := code.Names[instr.Operands[0]]
			obj := pop()
			v, err := vm.loadAttr(obj, name)
			if err != nil {
				return nil, nil, err
			}
			push(v)

		case op.StoreAttr:
			name := code.Names[instr.Operands[0]]
			v := pop()
			obj := pop()
			setter, ok := obj.(object.AttrSetter)
			if !ok {
				return nil, nil, errors.Attrf("%s object has no settable attributes", object.TypeNameOf(obj))
			}
			if err := setter.SetAttr(name, v); err != nil {
				return nil, nil, err
			}

		case op.LoadIndex:
			key := pop()
			obj := pop()
			indexable, ok := obj.(object.Indexable)
			if !ok {
				return nil, nil, errors.Typef("%s object is not subscriptable", object.TypeNameOf(obj))
			}
			v, err := indexable.GetIndex(key)
			if err != nil {
				return nil, nil, err
			}
			push(v)

		case op.StoreIndex:
			v := pop()
			key := pop()
			obj := pop()
			settable, ok := obj.(object.IndexSettable)
			if !ok {
				return nil, nil, errors.Typef("%s object does not support item assignment", object.TypeNameOf(obj))
			}
			if err := settable.SetIndex(key, v); err != nil {
				return nil, nil, err
			}

		case op.BuildList:
			push(object.NewList(popN(instr.Operands[0])))

		case op.BuildTuple:
			push(object.NewTuple(popN(instr.Operands[0])))

		case op.BuildSet:
			items := popN(instr.Operands[0])
			set := object.NewSet()
			for _, it := range items {
				if err := set.Add(it); err != nil {
					return nil, nil, err
				}
			}
			push(set)

		case op.BuildDict:
			n := instr.Operands[0]
			items := popN(2 * n)
			dict := object.NewDict()
			for i := 0; i < n; i++ {
				key := items[2*i]
				val := items[2*i+1]
				strKey, ok := key.(*object.Str)
				if !ok {
					return nil, nil, errors.Typef("dict keys must be str, not %s", key.Type())
				}
				dict.Set(strKey.Value, val)
			}
			push(dict)

		case op.Add, op.Sub, op.Mul, op.Div:
			right := pop()
			left := pop()
			v, err := arith(instr.Op, left, right)
			if err != nil {
				return nil, nil, err
			}
			push(v)

		case op.UnaryNeg, op.UnaryPos:
			v, err := unary(instr.Op, pop())
			if err != nil {
				return nil, nil, err
			}
			push(v)

		case op.Eq:
			right, left := pop(), pop()
			push(object.NewBool(left.Equals(right)))

		case op.Ne:
			right, left := pop(), pop()
			push(object.NewBool(!left.Equals(right)))

		case op.Lt, op.Le, op.Gt, op.Ge:
			right := pop()
			left := pop()
			v, err := compare(instr.Op, left, right)
			if err != nil {
				return nil, nil, err
			}
			push(v)

		case op.Jump:
			next = instr.Operands[0]

		case op.JumpIfFalse:
			if !pop().Truthy() {
				next = instr.Operands[0]
			}

		case op.JumpIfTrue:
			if pop().Truthy() {
				next = instr.Operands[0]
			}

		case op.SetupLoop:
			loopStack = append(loopStack, loopBlock{
				exitIP:     instr.Operands[0],
				continueIP: ip + 1,
				isFor:      instr.Operands[1] == 1,
			})

		case op.PopBlock:
			loopStack = loopStack[:len(loopStack)-1]

		case op.Break:
			if len(loopStack) == 0 {
				return nil, nil, errors.Runtimef("break outside loop")
			}
			lb := loopStack[len(loopStack)-1]
			loopStack = loopStack[:len(loopStack)-1]
			if lb.isFor {
				iterStack = iterStack[:len(iterStack)-1]
			}
			next = lb.exitIP

		case op.Continue:
			if len(loopStack) == 0 {
				return nil, nil, errors.Runtimef("continue outside loop")
			}
			next = loopStack[len(loopStack)-1].continueIP

		case op.GetIter:
			seq, ok := pop().(object.Sequence)
			if !ok {
				return nil, nil, errors.Typef("object is not iterable")
			}
			iterStack = append(iterStack, &iterState{seq: seq})

		case op.ForIter:
			it := iterStack[len(iterStack)-1]
			if it.idx < it.seq.Len() {
				push(it.seq.At(it.idx))
				it.idx++
			} else {
				iterStack = iterStack[:len(iterStack)-1]
				next = instr.Operands[0]
			}

		case op.Import:
			name := code.Names[instr.Operands[0]]
			m, err := vm.loadModule(name)
			if err != nil {
				return nil, nil, err
			}
			locals[name] = m

		case op.ImportFrom:
			name := code.Names[instr.Operands[0]]
			count := instr.Operands[1]
			m, err := vm.loadModule(name)
			if err != nil {
				return nil, nil, err
			}
			for i := 0; i < count; i++ {
				attr := code.Names[instr.Operands[2+i]]
				getter, ok := m.(object.AttrGetter)
				if !ok {
					return nil, nil, errors.Importf("module %q has no attributes", name)
				}
				v, ok := getter.GetAttr(attr)
				if !ok {
					return nil, nil, errors.Importf("cannot import name %q from %q", attr, name)
				}
				locals[attr] = v
			}

		case op.ImportStar:
			name := code.Names[instr.Operands[0]]
			m, err := vm.loadModule(name)
			if err != nil {
				return nil, nil, err
			}
			for k, v := range moduleAttrs(m) {
				if len(k) > 0 && k[0] == '_' {
					continue
				}
				locals[k] = v
			}

		default:
			return nil, nil, errors.Runtimef("unhandled opcode %s", instr.Op)
		}

		ip = next
	}

	if len(stack) > 0 {
		return stack[len(stack)-1], locals, nil
	}
	return object.NilValue, locals, nil
}
