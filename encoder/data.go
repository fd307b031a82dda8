package encoder

import "github.com/shalan/zx16/parser"

// encodeAsciiz packs a NUL-terminated string into 16-bit little-endian
// slots, two bytes per slot. An odd-length string (including the
// terminator) leaves the high half of its last slot zero.
func (e *Encoder) encodeAsciiz(line *parser.Line) error {
	s := parser.StripQuotes(line.Operands)
	data := append([]byte(s), 0)

	count := (len(data) + 1) / 2
	code := make([]uint16, count)
	for j := 0; j < count; j++ {
		idx := j * 2
		var w uint16
		if idx < len(data) {
			w |= uint16(data[idx])
		}
		if idx+1 < len(data) {
			w |= uint16(data[idx+1]) << 8
		}
		code[j] = w
	}

	line.Code = code
	line.CodeCount = count
	return nil
}

// encodeByte packs each comma-separated value into the low 8 bits of its
// own 16-bit slot.
func (e *Encoder) encodeByte(line *parser.Line) error {
	toks := parser.SplitValues(line.Operands)
	code := make([]uint16, len(toks))
	for i, tok := range toks {
		v, perr := immediate(line, tok)
		if perr != nil {
			return wrapErr(line, perr)
		}
		code[i] = uint16(v) & 0xFF
	}
	line.Code = code
	line.CodeCount = len(toks)
	return nil
}

// encodeWord packs each comma-separated value into its own 16-bit slot.
func (e *Encoder) encodeWord(line *parser.Line) error {
	toks := parser.SplitValues(line.Operands)
	code := make([]uint16, len(toks))
	for i, tok := range toks {
		v, perr := immediate(line, tok)
		if perr != nil {
			return wrapErr(line, perr)
		}
		code[i] = uint16(v)
	}
	line.Code = code
	line.CodeCount = len(toks)
	return nil
}
