package encoder

import (
	"github.com/shalan/zx16/isa"
	"github.com/shalan/zx16/parser"
)

// encodeB encodes a B-format branch: rs1, label. The offset is
// PC-relative, where PC is the branch instruction's own address plus 2
// (the size of the instruction itself), and must fit in a signed 4-bit
// field.
//
//	word = (offset&0xF)<<12 | rs1<<6 | funct3<<3 | opcode
func (e *Encoder) encodeB(line *parser.Line, def isa.Def) (uint16, error) {
	toks, perr := operands(line, 2)
	if perr != nil {
		return 0, wrapErr(line, perr)
	}
	rs1, perr := register(line, toks[0])
	if perr != nil {
		return 0, wrapErr(line, perr)
	}

	sym, ok := e.prog.Symbols.Lookup(toks[1])
	if !ok {
		return 0, wrapErr(line, parser.NewError(pos(line), parser.ErrUndefinedLabel,
			"undefined label %q", toks[1]))
	}
	e.prog.Symbols.MarkReferenced(toks[1])

	offset := (int32(sym.Address) - (int32(line.Address) + 2)) >> 1
	if offset < -8 || offset > 7 {
		return 0, wrapErr(line, parser.NewError(pos(line), parser.ErrOffsetOutOfRange,
			"branch offset %d out of range [-8,7]", offset))
	}

	word := uint16(offset&0xF)<<12 | (uint16(rs1)&0x7)<<6 | (def.Funct3&0x7)<<3 | (def.Opcode & 0x7)
	return word, nil
}
