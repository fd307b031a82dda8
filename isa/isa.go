// Package isa holds the static Z16 instruction-format table shared by the
// parser (to recognize a mnemonic) and the encoder (to encode it).
package isa

import "strings"

// Format identifies one of the Z16 encoding shapes.
type Format int

const (
	FormatR Format = iota
	FormatI
	FormatB
	FormatL
	FormatJ
	FormatU
	FormatS
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatB:
		return "B"
	case FormatL:
		return "L"
	case FormatJ:
		return "J"
	case FormatU:
		return "U"
	case FormatS:
		return "S"
	default:
		return "?"
	}
}

// Def is one row of the instruction definition table.
type Def struct {
	Mnemonic string
	Format   Format
	Opcode   uint16
	Funct3   uint16
	Funct4   uint16
}

// table is the static, case-insensitive mnemonic -> Def mapping. Field
// values are taken from the reference z16asm instructionSet array.
var table = []Def{
	{"add", FormatR, 0, 0, 0x0},
	{"sub", FormatR, 0, 0, 0x1},
	{"slt", FormatR, 0, 1, 0x0},
	{"sltu", FormatR, 0, 2, 0x0},
	{"sll", FormatR, 0, 3, 0x2},
	{"srl", FormatR, 0, 3, 0x4},
	{"sra", FormatR, 0, 3, 0x8},
	{"or", FormatR, 0, 4, 0x1},
	{"and", FormatR, 0, 5, 0x0},
	{"xor", FormatR, 0, 6, 0x4},
	{"mv", FormatR, 0, 7, 0x8},
	{"jr", FormatR, 0, 7, 0x0},
	{"jalr", FormatR, 0, 0, 0x8},

	{"addi", FormatI, 1, 0, 0},
	{"slti", FormatI, 1, 1, 0},
	{"sltui", FormatI, 1, 2, 0},
	{"slli", FormatI, 1, 3, 0},
	{"srli", FormatI, 1, 3, 0},
	{"srai", FormatI, 1, 3, 0},
	{"ori", FormatI, 1, 4, 0},
	{"andi", FormatI, 1, 5, 0},
	{"xori", FormatI, 1, 6, 0},
	{"li", FormatI, 1, 7, 0},

	{"beq", FormatB, 2, 0, 0},
	{"bne", FormatB, 2, 1, 0},
	{"bz", FormatB, 2, 2, 0},
	{"bnz", FormatB, 2, 3, 0},
	{"blt", FormatB, 2, 4, 0},
	{"bge", FormatB, 2, 5, 0},
	{"bltu", FormatB, 2, 6, 0},
	{"bgeu", FormatB, 2, 7, 0},

	{"lb", FormatL, 3, 0, 0},
	{"lw", FormatL, 3, 2, 0},
	{"lbu", FormatL, 3, 4, 0},
	{"sb", FormatL, 3, 0, 0},
	{"sw", FormatL, 3, 2, 0},

	{"j", FormatJ, 5, 0, 0},
	{"jal", FormatJ, 5, 0, 0},

	{"lui", FormatU, 6, 0, 0},
	{"auipc", FormatU, 6, 0, 0},

	{"ecall", FormatS, 7, 0, 0},
}

var byMnemonic map[string]Def

func init() {
	byMnemonic = make(map[string]Def, len(table))
	for _, d := range table {
		byMnemonic[d.Mnemonic] = d
	}
}

// Lookup finds an instruction definition by mnemonic, case-insensitively.
func Lookup(mnemonic string) (Def, bool) {
	d, ok := byMnemonic[strings.ToLower(mnemonic)]
	return d, ok
}

// IsStore reports whether mnemonic is an L-format store (source register
// flows into the encoded slot rather than a destination register).
func IsStore(mnemonic string) bool {
	switch strings.ToLower(mnemonic) {
	case "sb", "sw":
		return true
	default:
		return false
	}
}
