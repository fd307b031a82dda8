// Package encoder implements pass 2 of the zx16 assembler: it walks the
// line records pass 1 produced, resolves symbol references, computes
// PC-relative offsets, and fills in each Line's Code[] with the encoded
// 16-bit machine words (or raw data bytes).
package encoder

import (
	"github.com/shalan/zx16/isa"
	"github.com/shalan/zx16/parser"
)

// Encoder runs pass 2 over an already pass-1'd program.
type Encoder struct {
	prog *parser.Program
}

// New creates an encoder bound to prog.
func New(prog *parser.Program) *Encoder {
	return &Encoder{prog: prog}
}

// Encode fills in Code/CodeCount for every line, returning the first
// encoding failure encountered. It never re-derives an address: every
// computation below reads Line.Address, which pass 1 already settled
// once and for all, rather than re-tracking location counters the way
// the reference implementation's buggy pass 2 does.
func (e *Encoder) Encode() error {
	for _, line := range e.prog.Lines {
		if line.Mnemonic == "" {
			continue
		}
		if line.IsDirective() {
			if err := e.encodeDirective(line); err != nil {
				return err
			}
			continue
		}
		if err := e.encodeInstruction(line); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeDirective(line *parser.Line) error {
	switch line.Mnemonic {
	case ".asciiz":
		return e.encodeAsciiz(line)
	case ".byte":
		return e.encodeByte(line)
	case ".word":
		return e.encodeWord(line)
	case ".space", ".org", ".text", ".data":
		return nil
	default:
		return wrapErr(line, parser.NewError(pos(line), parser.ErrUnknownMnemonic,
			"unknown directive %q", line.Mnemonic))
	}
}

func (e *Encoder) encodeInstruction(line *parser.Line) error {
	def, ok := isa.Lookup(line.Mnemonic)
	if !ok {
		return wrapErr(line, parser.NewError(pos(line), parser.ErrUnknownMnemonic,
			"unknown mnemonic %q", line.Mnemonic))
	}

	var (
		word uint16
		err  error
	)
	switch def.Format {
	case isa.FormatR:
		word, err = e.encodeR(line, def)
	case isa.FormatI:
		word, err = e.encodeI(line, def)
	case isa.FormatB:
		word, err = e.encodeB(line, def)
	case isa.FormatL:
		word, err = e.encodeL(line, def)
	case isa.FormatJ:
		word, err = e.encodeJ(line, def)
	case isa.FormatU:
		word, err = e.encodeU(line, def)
	case isa.FormatS:
		word, err = e.encodeS(line, def)
	}
	if err != nil {
		return err
	}

	line.Code = []uint16{word}
	line.CodeCount = 1
	line.ElementSize = 2
	return nil
}

func pos(line *parser.Line) parser.Position {
	return parser.Position{Line: line.LineNo}
}

// operands splits and validates the operand count for a format that
// needs exactly want tokens.
func operands(line *parser.Line, want int) ([]string, *parser.Error) {
	toks := parser.SplitOperands(line.Operands)
	if len(toks) != want {
		return nil, parser.NewError(pos(line), parser.ErrMissingOperand,
			"%s requires %d operand(s), got %d", line.Mnemonic, want, len(toks))
	}
	return toks, nil
}

func register(line *parser.Line, token string) (int, *parser.Error) {
	r, err := parser.ParseRegister(token)
	if err != nil {
		return 0, parser.NewError(pos(line), parser.ErrInvalidRegister, "%s", err)
	}
	return r, nil
}

func immediate(line *parser.Line, token string) (int32, *parser.Error) {
	v, err := parser.ParseImmediate(token)
	if err != nil {
		return 0, parser.NewError(pos(line), parser.ErrMalformedNumber, "%s", err)
	}
	return v, nil
}
