package encoder

import (
	"github.com/shalan/zx16/isa"
	"github.com/shalan/zx16/parser"
)

// encodeU encodes a U-format instruction (lui, auipc): rd, imm.
//
//	word = (imm&0x1FF)<<6 | rd<<3 | opcode
func (e *Encoder) encodeU(line *parser.Line, def isa.Def) (uint16, error) {
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

	word := uint16(imm&0x1FF)<<6 | (uint16(rd)&0x7)<<3 | (def.Opcode & 0x7)
	return word, nil
}
