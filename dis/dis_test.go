package dis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/compiler"
	"github.com/quietloop/serpent/op"
	"github.com/quietloop/serpent/parser"
)

func TestDisassembleAnnotatesConstantsAndNames(t *testing.T) {
	mod, err := parser.Parse("x = 1\nx")
	require.NoError(t, err)
	code, err := compiler.Compile(mod)
	require.NoError(t, err)

	instrs := Disassemble(code)
	var sawConst, sawName bool
	for _, instr := range instrs {
		if instr.Op == op.LoadConst {
			sawConst = true
			assert.Equal(t, "1", instr.Annotation)
		}
		if instr.Op == op.StoreName || instr.Op == op.LoadName {
			sawName = true
			assert.Equal(t, "x", instr.Annotation)
		}
	}
	assert.True(t, sawConst)
	assert.True(t, sawName)
}

func TestPrintIncludesNestedCode(t *testing.T) {
	mod, err := parser.Parse("def f():\n  return 1\nf()")
	require.NoError(t, err)
	code, err := compiler.Compile(mod)
	require.NoError(t, err)

	var buf bytes.Buffer
	Print(&buf, code)
	out := buf.String()
	assert.Contains(t, out, "CodeObject(<module>)")
	assert.Contains(t, out, "CodeObject(f)")
}
