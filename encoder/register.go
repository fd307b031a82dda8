package encoder

import (
	"github.com/shalan/zx16/isa"
	"github.com/shalan/zx16/parser"
)

// encodeR encodes an R-format instruction: two register operands,
// rs1 (or rd) then rs2.
//
//	word = funct4<<12 | rs2<<9 | rs1<<6 | funct3<<3 | opcode
func (e *Encoder) encodeR(line *parser.Line, def isa.Def) (uint16, error) {
	toks, perr := operands(line, 2)
	if perr != nil {
		return 0, wrapErr(line, perr)
	}
	rs1, perr := register(line, toks[0])
	if perr != nil {
		return 0, wrapErr(line, perr)
	}
	rs2, perr := register(line, toks[1])
	if perr != nil {
		return 0, wrapErr(line, perr)
	}

	word := (def.Funct4&0xF)<<12 | (uint16(rs2)&0x7)<<9 | (uint16(rs1)&0x7)<<6 | (def.Funct3&0x7)<<3 | (def.Opcode & 0x7)
	return word, nil
}
