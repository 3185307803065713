// Package dis disassembles a compiled CodeObject into a human-readable
// instruction listing. It is advisory only — the disassembler reads a
// CodeObject, it never mutates or drives execution — so it cannot affect
// semantics.
package dis

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/quietloop/serpent/bytecode"
	"github.com/quietloop/serpent/op"
)

// Instruction is one decoded bytecode instruction annotated with the
// resolved constant or name its operand refers to, when it has one.
type Instruction struct {
	Offset     int
	Op         op.Code
	Operands   []int
	Annotation string
}

// Disassemble walks a CodeObject's instruction stream and resolves the
// first operand of LoadConst, the single-name ops, Def and ClassDef to a
// human-readable annotation, the way LOAD_CONST's operand is more useful
// printed as its constant's value than as a bare pool index. ImportFrom's
// name operands are not annotated.
func Disassemble(code *bytecode.CodeObject) []Instruction {
	out := make([]Instruction, 0, len(code.Instructions))
	for i, instr := range code.Instructions {
		out = append(out, Instruction{
			Offset:     i,
			Op:         instr.Op,
			Operands:   instr.Operands,
			Annotation: annotate(code, instr),
		})
	}
	return out
}

func annotate(code *bytecode.CodeObject, instr bytecode.Instruction) string {
	if want, ok := op.OperandCounts[instr.Op]; ok && len(instr.Operands) < want {
		return "<malformed: missing operands>"
	}
	if len(instr.Operands) == 0 {
		return ""
	}
	switch instr.Op {
	case op.LoadConst:
		if idx := instr.Operands[0]; idx >= 0 && idx < len(code.Consts) {
			return code.Consts[idx].Inspect()
		}
	case op.LoadName, op.StoreName, op.LoadGlobal, op.StoreGlobal,
		op.LoadAttr, op.StoreAttr, op.Import, op.ImportStar:
		if idx := instr.Operands[0]; idx >= 0 && idx < len(code.Names) {
			return code.Names[idx]
		}
	case op.Def, op.ClassDef:
		if idx := instr.Operands[0]; idx >= 0 && idx < len(code.Names) {
			return code.Names[idx]
		}
	}
	return ""
}

// Print writes a colorized listing to w: the CodeObject's name as a
// header, then one line per instruction (offset, opcode mnemonic, raw
// operands, resolved annotation), followed by its nested code objects'
// listings in turn. Colorization has no bearing on what the listing
// says.
func Print(w io.Writer, code *bytecode.CodeObject) {
	header := color.New(color.FgCyan, color.Bold)
	mnemonic := color.New(color.FgYellow)

	header.Fprintf(w, "CodeObject(%s)\n", code.Name)
	for _, instr := range Disassemble(code) {
		fmt.Fprintf(w, "%4d  ", instr.Offset)
		mnemonic.Fprintf(w, "%-16s", instr.Op.String())
		fmt.Fprintf(w, " %v", instr.Operands)
		if instr.Annotation != "" {
			fmt.Fprintf(w, "  ; %s", instr.Annotation)
		}
		fmt.Fprintln(w)
	}
	for _, nested := range code.Nested {
		fmt.Fprintln(w)
		Print(w, nested)
	}
}
