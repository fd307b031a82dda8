package encoder

import (
	"strings"

	"github.com/shalan/zx16/isa"
	"github.com/shalan/zx16/parser"
)

// encodeJ encodes a J-format instruction: a single label operand. The
// offset is PC-relative to the jump's own address and must fit in a
// signed 8-bit field.
//
//	word = f<<15 | (offset&0xFF)<<7 | (opcode&0xF)
func (e *Encoder) encodeJ(line *parser.Line, def isa.Def) (uint16, error) {
	toks, perr := operands(line, 1)
	if perr != nil {
		return 0, wrapErr(line, perr)
	}

	sym, ok := e.prog.Symbols.Lookup(toks[0])
	if !ok {
		return 0, wrapErr(line, parser.NewError(pos(line), parser.ErrUndefinedLabel,
			"undefined label %q", toks[0]))
	}
	e.prog.Symbols.MarkReferenced(toks[0])

	offset := (int32(sym.Address) - int32(line.Address)) >> 1
	if offset < -128 || offset > 127 {
		return 0, wrapErr(line, parser.NewError(pos(line), parser.ErrOffsetOutOfRange,
			"jump offset %d out of range [-128,127]", offset))
	}

	var f uint16
	if strings.EqualFold(line.Mnemonic, "jal") {
		f = 1
	}

	word := f<<15 | uint16(offset&0xFF)<<7 | (def.Opcode & 0xF)
	return word, nil
}
