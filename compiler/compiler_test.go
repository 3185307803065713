package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/object"
	"github.com/quietloop/serpent/op"
	"github.com/quietloop/serpent/parser"
)

func TestConstPoolDeduplicates(t *testing.T) {
	mod, err := parser.Parse("x = 1\ny = 1\nz = 1")
	require.NoError(t, err)
	code, err := Compile(mod)
	require.NoError(t, err)
	// The module ends in an assignment, so the pool also holds the trailing
	// None the compiler loads before Return.
	assert.Len(t, code.Consts, 2, "the literal 1 should be interned once, next to the trailing None")
}

func TestNamePoolDeduplicates(t *testing.T) {
	mod, err := parser.Parse("x = 1\nx = 2\nx")
	require.NoError(t, err)
	code, err := Compile(mod)
	require.NoError(t, err)
	assert.Len(t, code.Names, 1, "the name x should be interned once")
}

func TestIfElseJumpTargetsAreValid(t *testing.T) {
	mod, err := parser.Parse("if 1:\n  x = 1\nelif 2:\n  x = 2\nelse:\n  x = 3\nx")
	require.NoError(t, err)
	code, err := Compile(mod)
	require.NoError(t, err)

	for _, instr := range code.Instructions {
		switch instr.Op {
		case op.Jump, op.JumpIfFalse, op.JumpIfTrue:
			target := instr.Operands[0]
			assert.GreaterOrEqual(t, target, 0)
			assert.LessOrEqual(t, target, len(code.Instructions))
		}
	}
}

func TestWhileLoopEmitsSetupAndPopBlock(t *testing.T) {
	mod, err := parser.Parse("x = 0\nwhile x:\n  x = 0")
	require.NoError(t, err)
	code, err := Compile(mod)
	require.NoError(t, err)

	var sawSetup, sawPopBlock bool
	for _, instr := range code.Instructions {
		if instr.Op == op.SetupLoop {
			sawSetup = true
		}
		if instr.Op == op.PopBlock {
			sawPopBlock = true
		}
	}
	assert.True(t, sawSetup)
	assert.True(t, sawPopBlock)
}

func TestFunctionDefSeedsParamNamesPositionally(t *testing.T) {
	mod, err := parser.Parse("def add(a, b):\n  return a + b\nadd(1, 2)")
	require.NoError(t, err)
	code, err := Compile(mod)
	require.NoError(t, err)
	require.Len(t, code.Nested, 1)
	fnCode := code.Nested[0]
	require.GreaterOrEqual(t, len(fnCode.Names), 2)
	assert.Equal(t, "a", fnCode.Names[0])
	assert.Equal(t, "b", fnCode.Names[1])
}

func TestEmptyModuleReturnsNone(t *testing.T) {
	mod, err := parser.Parse("")
	require.NoError(t, err)
	code, err := Compile(mod)
	require.NoError(t, err)
	require.Len(t, code.Instructions, 2)
	first := code.Instructions[0]
	assert.Equal(t, op.LoadConst, first.Op)
	assert.Equal(t, object.NilValue, code.Consts[first.Operands[0]])
	last := code.Instructions[len(code.Instructions)-1]
	assert.Equal(t, op.Return, last.Op)
}
