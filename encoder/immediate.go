package encoder

import (
	"strings"

	"github.com/shalan/zx16/isa"
	"github.com/shalan/zx16/parser"
)

// shiftTags carries the tag bits folded into the immediate field of a
// shift-by-constant instruction, per the Z16 I-type shift encoding.
var shiftTags = map[string]int32{
	"slli": 1,
	"srli": 2,
	"srai": 4,
}

// encodeI encodes an I-format instruction: rd, imm.
//
//	word = (imm&0x7F)<<9 | rd<<6 | funct3<<3 | opcode
func (e *Encoder) encodeI(line *parser.Line, def isa.Def) (uint16, error) {
	toks, perr := operands(line, 2)
	if perr != nil {
		return 0, wrapErr(line, perr)
	}
	rd, perr := register(line, toks[0])
	if perr != nil {
		return 0, wrapErr(line, perr)
	}
	imm, perr := immediate(line, toks[1])
	if perr != nil {
		return 0, wrapErr(line, perr)
	}

	if tag, ok := shiftTags[strings.ToLower(line.Mnemonic)]; ok {
		imm = tag<<4 | (imm & 0xF)
	}

	word := uint16(imm&0x7F)<<9 | (uint16(rd)&0x7)<<6 | (def.Funct3&0x7)<<3 | (def.Opcode & 0x7)
	return word, nil
}
