// Package op defines the flat opcode enum that the compiler emits and the
// virtual machine dispatches.
package op

// Code is an integer opcode identifying one VM operation.
type Code uint16

const (
	Invalid Code = iota

	// Constants and names
	LoadConst
	LoadName
	StoreName
	LoadGlobal
	StoreGlobal

	// Stack
	Pop

	// Calls and returns
	Call
	CallMethod
	Return

	// Functions and classes
	Def
	ClassDef

	// Attributes
	LoadAttr
	StoreAttr

	// Indexing
	LoadIndex
	StoreIndex

	// Collection construction
	BuildList
	BuildDict
	BuildTuple
	BuildSet

	// Arithmetic
	Add
	Sub
	Mul
	Div
	UnaryNeg
	UnaryPos

	// Comparisons
	Eq
	Ne
	Lt
	Le
	Gt
	Ge

	// Jumps
	Jump
	JumpIfFalse
	JumpIfTrue

	// Loop blocks
	SetupLoop
	PopBlock
	Break
	Continue

	// Iteration
	GetIter
	ForIter

	// Modules
	Import
	ImportFrom
	ImportStar
)

var names = map[Code]string{
	Invalid:     "INVALID",
	LoadConst:   "LOAD_CONST",
	LoadName:    "LOAD_NAME",
	StoreName:   "STORE_NAME",
	LoadGlobal:  "LOAD_GLOBAL",
	StoreGlobal: "STORE_GLOBAL",
	Pop:         "POP",
	Call:        "CALL",
	CallMethod:  "CALL_METHOD",
	Return:      "RETURN",
	Def:         "DEF",
	ClassDef:    "CLASS_DEF",
	LoadAttr:    "LOAD_ATTR",
	StoreAttr:   "STORE_ATTR",
	LoadIndex:   "LOAD_INDEX",
	StoreIndex:  "STORE_INDEX",
	BuildList:   "BUILD_LIST",
	BuildDict:   "BUILD_DICT",
	BuildTuple:  "BUILD_TUPLE",
	BuildSet:    "BUILD_SET",
	Add:         "ADD",
	Sub:         "SUB",
	Mul:         "MUL",
	Div:         "DIV",
	UnaryNeg:    "UNARY_NEG",
	UnaryPos:    "UNARY_POS",
	Eq:          "EQ",
	Ne:          "NE",
	Lt:          "LT",
	Le:          "LE",
	Gt:          "GT",
	Ge:          "GE",
	Jump:        "JUMP",
	JumpIfFalse: "JUMP_IF_FALSE",
	JumpIfTrue:  "JUMP_IF_TRUE",
	SetupLoop:   "SETUP_LOOP",
	PopBlock:    "POP_BLOCK",
	Break:       "BREAK",
	Continue:    "CONTINUE",
	GetIter:     "GET_ITER",
	ForIter:     "FOR_ITER",
	Import:      "IMPORT",
	ImportFrom:  "IMPORT_FROM",
	ImportStar:  "IMPORT_STAR",
}

func (c Code) String() string {
	if s, ok := names[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// OperandCounts records the minimum operand count each operand-carrying
// opcode is emitted with. ImportFrom is variable-width: its second operand
// is a count followed by that many name indices. The disassembler uses
// this table to flag malformed instructions instead of panicking on them.
var OperandCounts = map[Code]int{
	LoadConst:   1, // consts index
	LoadName:    1, // names index
	StoreName:   1,
	LoadGlobal:  1,
	StoreGlobal: 1,
	Call:        1, // argc
	CallMethod:  1,
	Def:         3, // name index, arity, nested code index
	ClassDef:    2, // name index, nested code index
	LoadAttr:    1, // names index
	StoreAttr:   1,
	BuildList:   1,
	BuildDict:   1,
	BuildTuple:  1,
	BuildSet:    1,
	Jump:        1, // absolute instruction address
	JumpIfFalse: 1,
	JumpIfTrue:  1,
	SetupLoop:   2, // exit address, isFor flag (0 while, 1 for)
	ForIter:     1, // exit address
	Import:      1, // names index
	ImportFrom:  2, // module name index, count, then that many name indices
	ImportStar:  1,
}
