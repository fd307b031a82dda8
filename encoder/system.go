package encoder

import (
	"github.com/shalan/zx16/isa"
	"github.com/shalan/zx16/parser"
)

// encodeS encodes an S-format instruction (ecall): a single service
// number immediate occupying the word's upper 12 bits.
//
//	word = svc<<4 | 0x7
func (e *Encoder) encodeS(line *parser.Line, _ isa.Def) (uint16, error) {
	if line.Operands == "" {
		return 0, wrapErr(line, parser.NewError(pos(line), parser.ErrMissingOperand,
			"%s requires an operand", line.Mnemonic))
	}
	svc, perr := immediate(line, line.Operands)
	if perr != nil {
		return 0, wrapErr(line, perr)
	}

	word := uint16(svc&0xFFF)<<4 | 0x7
	return word, nil
}
