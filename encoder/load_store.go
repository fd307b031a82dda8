package encoder

import (
	"strings"

	"github.com/shalan/zx16/isa"
	"github.com/shalan/zx16/parser"
)

// encodeL encodes an L-format load or store. The reference implementation
// defines lb/lw/lbu/sb/sw in its instruction table but never actually
// encodes them (pass 2 has no branch for format L at all, so every
// load/store silently comes out as the zero word). This resolves the
// open question spec.md flags by mirroring the R-type field layout,
// substituting a signed 4-bit byte offset for R-type's funct4:
//
//	lb/lw/lbu rd, offset(rs1)
//	sb/sw     rs2, offset(rs1)
//
//	word = (offset&0xF)<<12 | reg<<9 | rs1<<6 | funct3<<3 | opcode
//
// where reg is rd for a load and rs2 for a store, occupying the same bit
// position R-type calls rs2.
func (e *Encoder) encodeL(line *parser.Line, def isa.Def) (uint16, error) {
	toks, perr := operands(line, 2)
	if perr != nil {
		return 0, wrapErr(line, perr)
	}
	reg, perr := register(line, toks[0])
	if perr != nil {
		return 0, wrapErr(line, perr)
	}
	offsetTok, baseTok, serr := splitOffsetBase(toks[1])
	if serr != nil {
		return 0, wrapErr(line, parser.NewError(pos(line), parser.ErrMissingOperand, "%s", serr))
	}
	rs1, perr := register(line, baseTok)
	if perr != nil {
		return 0, wrapErr(line, perr)
	}
	offset, perr := immediate(line, offsetTok)
	if perr != nil {
		return 0, wrapErr(line, perr)
	}
	if offset < -8 || offset > 7 {
		return 0, wrapErr(line, parser.NewError(pos(line), parser.ErrOffsetOutOfRange,
			"load/store offset %d out of range [-8,7]", offset))
	}

	word := uint16(offset&0xF)<<12 | (uint16(reg)&0x7)<<9 | (uint16(rs1)&0x7)<<6 | (def.Funct3&0x7)<<3 | (def.Opcode & 0x7)
	return word, nil
}

// splitOffsetBase splits "offset(reg)" into its two parts. An omitted
// offset ("(reg)") is treated as zero.
func splitOffsetBase(token string) (offset, base string, err error) {
	open := strings.IndexByte(token, '(')
	shut := strings.IndexByte(token, ')')
	if open < 0 || shut < open {
		return "", "", errMalformedOffset(token)
	}
	offset = strings.TrimSpace(token[:open])
	if offset == "" {
		offset = "0"
	}
	base = strings.TrimSpace(token[open+1 : shut])
	return offset, base, nil
}

type offsetError string

func (e offsetError) Error() string { return string(e) }

func errMalformedOffset(token string) error {
	return offsetError("expected \"offset(reg)\", got \"" + token + "\"")
}
