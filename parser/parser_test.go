package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietloop/serpent/ast"
)

func TestParseAssignment(t *testing.T) {
	mod, err := Parse("x = 1")
	require.NoError(t, err)
	require.Len(t, mod.Statements, 1)
	assign, ok := mod.Statements[0].(*ast.Assign)
	require.True(t, ok)
	name, ok := assign.Target.(*ast.NameExpr)
	require.True(t, ok)
	assert.Equal(t, "x", name.Name)
}

func TestParseIfElifElse(t *testing.T) {
	mod, err := Parse("if x:\n  y = 1\nelif z:\n  y = 2\nelse:\n  y = 3")
	require.NoError(t, err)
	require.Len(t, mod.Statements, 1)
	ifStmt, ok := mod.Statements[0].(*ast.If)
	require.True(t, ok)
	assert.Len(t, ifStmt.Tests, 2)
	assert.Len(t, ifStmt.Else, 1)
}

func TestParseFunctionDefParams(t *testing.T) {
	mod, err := Parse("def add(a, b):\n  return a + b")
	require.NoError(t, err)
	fn, ok := mod.Statements[0].(*ast.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
}

func TestParseForLoopBareName(t *testing.T) {
	mod, err := Parse("for i in range(3):\n  x = i")
	require.NoError(t, err)
	forStmt, ok := mod.Statements[0].(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.Var)
}

func TestParseImportForms(t *testing.T) {
	mod, err := Parse("import os\nfrom m import a, b\nfrom m import *")
	require.NoError(t, err)
	require.Len(t, mod.Statements, 3)

	imp, ok := mod.Statements[0].(*ast.Import)
	require.True(t, ok)
	assert.Equal(t, "os", imp.Name)

	from, ok := mod.Statements[1].(*ast.ImportFrom)
	require.True(t, ok)
	assert.Equal(t, "m", from.Module)
	assert.Equal(t, []string{"a", "b"}, from.Names)

	star, ok := mod.Statements[2].(*ast.ImportStar)
	require.True(t, ok)
	assert.Equal(t, "m", star.Name)
}

func TestParseRejectsMultipleAssignmentTargets(t *testing.T) {
	_, err := Parse("a = b = 1")
	require.Error(t, err)
}

func TestParseClassDef(t *testing.T) {
	mod, err := Parse("class C:\n  def __init__(self, v):\n    self.x = v")
	require.NoError(t, err)
	class, ok := mod.Statements[0].(*ast.ClassDef)
	require.True(t, ok)
	assert.Equal(t, "C", class.Name)
	require.Len(t, class.Body, 1)
}
