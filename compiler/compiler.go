// Package compiler lowers an ast.Module to a bytecode.CodeObject. The
// compiler owns constant- and name-pool interning and emits
// forward-patched jump targets for control flow; it performs no static
// scope resolution at all — LoadName/StoreName resolution against
// locals/globals/builtins is entirely the VM's job at run time, which
// keeps this package small relative to a typical compiler.
package compiler

import (
	"github.com/quietloop/serpent/ast"
	"github.com/quietloop/serpent/bytecode"
	"github.com/quietloop/serpent/errors"
	"github.com/quietloop/serpent/object"
	"github.com/quietloop/serpent/op"
)

// Compiler lowers one AST module (or nested function/class body) into a
// bytecode.CodeObject at a time. A fresh Compiler is used per CodeObject;
// nested bodies get their own Compiler sharing nothing but the code they
// eventually attach to their parent's Nested slice.
type Compiler struct {
	code *bytecode.CodeObject
}

// Compile lowers a top-level module to its root CodeObject. The last
// top-level expression statement's value is left on the stack before the
// final Return; an empty module returns None.
func Compile(mod *ast.Module) (*bytecode.CodeObject, error) {
	c := &Compiler{code: bytecode.NewCodeObject("<module>")}
	if err := c.compileTopLevel(mod.Statements); err != nil {
		return nil, err
	}
	c.emit(op.Return)
	return c.code, nil
}

func (c *Compiler) constIndex(v object.Value) int {
	for i, existing := range c.code.Consts {
		if existing.Type() == v.Type() && existing.Equals(v) {
			return i
		}
	}
	c.code.Consts = append(c.code.Consts, v)
	return len(c.code.Consts) - 1
}

func (c *Compiler) nameIndex(name string) int {
	for i, existing := range c.code.Names {
		if existing == name {
			return i
		}
	}
	c.code.Names = append(c.code.Names, name)
	return len(c.code.Names) - 1
}

func (c *Compiler) emit(code op.Code, operands ...int) int {
	c.code.Instructions = append(c.code.Instructions, bytecode.Instruction{Op: code, Operands: operands})
	return len(c.code.Instructions) - 1
}

func (c *Compiler) here() int {
	return len(c.code.Instructions)
}

func (c *Compiler) patchOperand(instrIdx, operandIdx, value int) {
	c.code.Instructions[instrIdx].Operands[operandIdx] = value
}

// compileTopLevel is used only for the module root: the last statement, if
// it is a bare expression statement, is left unpopped so its value becomes
// the module's result. Every other
// statement, and every non-last expression statement, is compiled with its
// value discarded. An empty or all-non-expression-tailed module ends with
// an explicit LoadConst None so Return always has exactly one value to
// pop, matching the documented equivalence between a module ending in an
// expression and one ending in an assignment.
func (c *Compiler) compileTopLevel(stmts []ast.Statement) error {
	leftValue := false
	for i, stmt := range stmts {
		isLast := i == len(stmts)-1
		if exprStmt, ok := stmt.(*ast.ExprStmt); ok && isLast {
			if err := c.compileExpr(exprStmt.Expr); err != nil {
				return err
			}
			leftValue = true
			continue
		}
		if err := c.compileStatement(stmt); err != nil {
			return err
		}
	}
	if !leftValue {
		c.emit(op.LoadConst, c.constIndex(object.NilValue))
	}
	return nil
}

// compileBody compiles a nested body (function, class, if/while/for block)
// where every expression statement's value is discarded; only explicit
// `return` produces a function's result. Callers that need a trailing
// default value (FunctionDef, ClassDef) append it themselves.
func (c *Compiler) compileBody(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if exprStmt, ok := stmt.(*ast.ExprStmt); ok {
			if err := c.compileExpr(exprStmt.Expr); err != nil {
				return err
			}
			c.emit(op.Pop)
			continue
		}
		if err := c.compileStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) compileStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.Assign:
		return c.compileAssign(s)
	case *ast.ExprStmt:
		if err := c.compileExpr(s.Expr); err != nil {
			return err
		}
		c.emit(op.Pop)
		return nil
	case *ast.If:
		return c.compileIf(s)
	case *ast.While:
		return c.compileWhile(s)
	case *ast.For:
		return c.compileFor(s)
	case *ast.Break:
		c.emit(op.Break)
		return nil
	case *ast.Continue:
		c.emit(op.Continue)
		return nil
	case *ast.FunctionDef:
		return c.compileFunctionDef(s)
	case *ast.Return:
		if err := c.compileExpr(s.Value); err != nil {
			return err
		}
		c.emit(op.Return)
		return nil
	case *ast.ClassDef:
		return c.compileClassDef(s)
	case *ast.Import:
		c.emit(op.Import, c.nameIndex(s.Name))
		return nil
	case *ast.ImportFrom:
		operands := []int{c.nameIndex(s.Module), len(s.Names)}
		for _, n := range s.Names {
			operands = append(operands, c.nameIndex(n))
		}
		c.emit(op.ImportFrom, operands...)
		return nil
	case *ast.ImportStar:
		c.emit(op.ImportStar, c.nameIndex(s.Name))
		return nil
	default:
		return errors.Syntaxf("compiler: unhandled statement %T", stmt)
	}
}

func (c *Compiler) compileAssign(s *ast.Assign) error {
	switch target := s.Target.(type) {
	case *ast.NameExpr:
		if err := c.compileExpr(s.Value); err != nil {
			return err
		}
		c.emit(op.StoreName, c.nameIndex(target.Name))
		return nil
	case *ast.Index:
		if err := c.compileExpr(target.Obj); err != nil {
			return err
		}
		if err := c.compileExpr(target.Key); err != nil {
			return err
		}
		if err := c.compileExpr(s.Value); err != nil {
			return err
		}
		c.emit(op.StoreIndex)
		return nil
	case *ast.Attribute:
		if err := c.compileExpr(target.Obj); err != nil {
			return err
		}
		if err := c.compileExpr(s.Value); err != nil {
			return err
		}
		c.emit(op.StoreAttr, c.nameIndex(target.Name))
		return nil
	default:
		return errors.Syntaxf("compiler: invalid assignment target %T", s.Target)
	}
}

// compileIf lowers an if/elif*/else chain. Each test's false branch jumps
// forward to the next test (or the else/end); each non-final body jumps
// forward past the remaining branches once its own body completes. The
// first True branch wins; later branches are unreachable,
// exactly as in the source language's own evaluation order.
func (c *Compiler) compileIf(s *ast.If) error {
	var endJumps []int
	for i, test := range s.Tests {
		if err := c.compileExpr(test); err != nil {
			return err
		}
		falseJump := c.emit(op.JumpIfFalse, 0)
		if err := c.compileBody(s.Bodies[i]); err != nil {
			return err
		}
		hasMore := i < len(s.Tests)-1 || len(s.Else) > 0
		if hasMore {
			endJumps = append(endJumps, c.emit(op.Jump, 0))
		}
		c.patchOperand(falseJump, 0, c.here())
	}
	if len(s.Else) > 0 {
		if err := c.compileBody(s.Else); err != nil {
			return err
		}
	}
	end := c.here()
	for _, idx := range endJumps {
		c.patchOperand(idx, 0, end)
	}
	return nil
}

func (c *Compiler) compileWhile(s *ast.While) error {
	setupIdx := c.emit(op.SetupLoop, 0, 0)
	loopTop := c.here()
	if err := c.compileExpr(s.Test); err != nil {
		return err
	}
	exitJump := c.emit(op.JumpIfFalse, 0)
	if err := c.compileBody(s.Body); err != nil {
		return err
	}
	c.emit(op.Jump, loopTop)
	popBlockAddr := c.here()
	c.emit(op.PopBlock)
	afterLoop := c.here()
	c.patchOperand(exitJump, 0, popBlockAddr)
	c.patchOperand(setupIdx, 0, afterLoop)
	return nil
}

func (c *Compiler) compileFor(s *ast.For) error {
	if err := c.compileExpr(s.Iter); err != nil {
		return err
	}
	c.emit(op.GetIter)
	setupIdx := c.emit(op.SetupLoop, 0, 1)
	loopTop := c.here()
	forIterIdx := c.emit(op.ForIter, 0)
	c.emit(op.StoreName, c.nameIndex(s.Var))
	if err := c.compileBody(s.Body); err != nil {
		return err
	}
	c.emit(op.Jump, loopTop)
	popBlockAddr := c.here()
	c.emit(op.PopBlock)
	afterLoop := c.here()
	c.patchOperand(forIterIdx, 0, popBlockAddr)
	c.patchOperand(setupIdx, 0, afterLoop)
	return nil
}

// compileFunctionDef seeds the nested CodeObject's name pool with the
// parameter names in positional order, so the VM binds args[i] to
// names[i] at call time without any separate parameter vector.
func (c *Compiler) compileFunctionDef(s *ast.FunctionDef) error {
	nested := bytecode.NewCodeObject(s.Name)
	fc := &Compiler{code: nested}
	for _, p := range s.Params {
		fc.nameIndex(p)
	}
	if err := fc.compileBody(s.Body); err != nil {
		return err
	}
	fc.emit(op.LoadConst, fc.constIndex(object.NilValue))

	codeIdx := len(c.code.Nested)
	c.code.Nested = append(c.code.Nested, nested)
	c.emit(op.Def, c.nameIndex(s.Name), len(s.Params), codeIdx)
	return nil
}

// compileClassDef compiles the class body as nested code; the VM runs it
// in a sub-VM at ClassDef execution time and takes its resulting locals as
// the method table.
func (c *Compiler) compileClassDef(s *ast.ClassDef) error {
	nested := bytecode.NewCodeObject(s.Name)
	cc := &Compiler{code: nested}
	if err := cc.compileBody(s.Body); err != nil {
		return err
	}
	cc.emit(op.LoadConst, cc.constIndex(object.NilValue))

	codeIdx := len(c.code.Nested)
	c.code.Nested = append(c.code.Nested, nested)
	c.emit(op.ClassDef, c.nameIndex(s.Name), codeIdx)
	return nil
}

func (c *Compiler) compileExpr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.IntLit:
		c.emit(op.LoadConst, c.constIndex(object.NewInt(e.Value)))
	case *ast.FloatLit:
		c.emit(op.LoadConst, c.constIndex(object.NewFloat(e.Value)))
	case *ast.StrLit:
		c.emit(op.LoadConst, c.constIndex(object.NewStr(e.Value)))
	case *ast.BoolLit:
		c.emit(op.LoadConst, c.constIndex(object.NewBool(e.Value)))
	case *ast.NoneLit:
		c.emit(op.LoadConst, c.constIndex(object.NilValue))
	case *ast.NameExpr:
		c.emit(op.LoadName, c.nameIndex(e.Name))
	case *ast.UnaryOp:
		if err := c.compileExpr(e.Operand); err != nil {
			return err
		}
		switch e.Op {
		case "-":
			c.emit(op.UnaryNeg)
		case "+":
			c.emit(op.UnaryPos)
		default:
			return errors.Syntaxf("compiler: unknown unary operator %q", e.Op)
		}
	case *ast.BinOp:
		if err := c.compileExpr(e.Left); err != nil {
			return err
		}
		if err := c.compileExpr(e.Right); err != nil {
			return err
		}
		switch e.Op {
		case "+":
			c.emit(op.Add)
		case "-":
			c.emit(op.Sub)
		case "*":
			c.emit(op.Mul)
		case "/":
			c.emit(op.Div)
		default:
			return errors.Syntaxf("compiler: unknown binary operator %q", e.Op)
		}
	case *ast.Compare:
		if err := c.compileExpr(e.Left); err != nil {
			return err
		}
		if err := c.compileExpr(e.Right); err != nil {
			return err
		}
		switch e.Op {
		case "==":
			c.emit(op.Eq)
		case "!=":
			c.emit(op.Ne)
		case "<":
			c.emit(op.Lt)
		case "<=":
			c.emit(op.Le)
		case ">":
			c.emit(op.Gt)
		case ">=":
			c.emit(op.Ge)
		default:
			return errors.Syntaxf("compiler: unknown comparison operator %q", e.Op)
		}
	case *ast.Call:
		if err := c.compileExpr(e.Callee); err != nil {
			return err
		}
		for _, arg := range e.Args {
			if err := c.compileExpr(arg); err != nil {
				return err
			}
		}
		// Method calls get their own opcode so a later method-binding
		// fast path can recognize them; the VM currently dispatches both
		// identically.
		if _, isMethod := e.Callee.(*ast.Attribute); isMethod {
			c.emit(op.CallMethod, len(e.Args))
		} else {
			c.emit(op.Call, len(e.Args))
		}
	case *ast.Attribute:
		if err := c.compileExpr(e.Obj); err != nil {
			return err
		}
		c.emit(op.LoadAttr, c.nameIndex(e.Name))
	case *ast.Index:
		if err := c.compileExpr(e.Obj); err != nil {
			return err
		}
		if err := c.compileExpr(e.Key); err != nil {
			return err
		}
		c.emit(op.LoadIndex)
	case *ast.ListLit:
		for _, el := range e.Elems {
			if err := c.compileExpr(el); err != nil {
				return err
			}
		}
		c.emit(op.BuildList, len(e.Elems))
	case *ast.TupleLit:
		for _, el := range e.Elems {
			if err := c.compileExpr(el); err != nil {
				return err
			}
		}
		c.emit(op.BuildTuple, len(e.Elems))
	case *ast.SetLit:
		for _, el := range e.Elems {
			if err := c.compileExpr(el); err != nil {
				return err
			}
		}
		c.emit(op.BuildSet, len(e.Elems))
	case *ast.DictLit:
		for i := range e.Keys {
			if err := c.compileExpr(e.Keys[i]); err != nil {
				return err
			}
			if err := c.compileExpr(e.Values[i]); err != nil {
				return err
			}
		}
		c.emit(op.BuildDict, len(e.Keys))
	default:
		return errors.Syntaxf("compiler: unhandled expression %T", expr)
	}
	return nil
}
