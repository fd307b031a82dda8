package parser

import "strings"

// Parse runs pass 1: it walks the source line by line, splits each line
// into label/mnemonic/operands, switches sections, advances the location
// counters, records label definitions, and sizes each line's future
// emission. It never resolves a symbol reference or produces a Line's
// Code[] payload — that is pass 2's job, in the encoder package.
//
// Per the reference implementation, pass 1 does not validate an
// instruction mnemonic against the instruction table; any non-directive
// token is assumed to be a 2-byte instruction when the current section is
// .text. Unknown-mnemonic detection happens in pass 2, where the
// instruction table is actually consulted.
func Parse(filename, source string) (*Program, error) {
	prog := NewProgram(filename)

	var (
		section Section
		locText uint16
		locData uint16
	)

	rawLines := strings.Split(source, "\n")
	for i, raw := range rawLines {
		raw = strings.TrimRight(raw, "\r")
		lineNo := i + 1
		pos := Position{Filename: filename, Line: lineNo}

		label, mnemonic, operands := SplitLine(raw)
		line := &Line{
			LineNo:   lineNo,
			Original: raw,
			Section:  section,
			Mnemonic: mnemonic,
			Operands: operands,
			Label:    label,
		}
		switch section {
		case SectionText:
			line.Address = locText
		case SectionData:
			line.Address = locData
		default:
			line.Address = 0
		}

		if label != "" {
			if err := prog.Symbols.Add(label, line.Address, section, lineNo); err != nil {
				prev, _ := prog.Symbols.Lookup(label)
				return nil, NewError(pos, ErrDuplicateLabel, "label %q already defined at line %d", label, prev.DefLine)
			}
		}

		if mnemonic != "" {
			if line.IsDirective() {
				if err := pass1Directive(line, &section, &locText, &locData, pos); err != nil {
					return nil, err
				}
			} else if section == SectionText {
				line.ElementSize = 2
				locText += 2
			}
		}

		prog.Lines = append(prog.Lines, line)
	}

	return prog, nil
}

func pass1Directive(line *Line, section *Section, locText, locData *uint16, pos Position) error {
	switch line.Mnemonic {
	case ".text":
		*section = SectionText
	case ".data":
		*section = SectionData
	case ".org":
		if line.Operands == "" {
			return NewError(pos, ErrMissingOperand, ".org requires an operand")
		}
		v, err := ParseImmediate(line.Operands)
		if err != nil {
			return NewError(pos, ErrMalformedNumber, "%s", err)
		}
		newOrg := uint16(v)
		switch *section {
		case SectionText:
			*locText = newOrg
			line.Address = newOrg
		case SectionData:
			*locData = newOrg
			line.Address = newOrg
		}
	case ".asciiz":
		if line.Operands == "" {
			return NewError(pos, ErrMissingOperand, ".asciiz requires a string operand")
		}
		s := StripQuotes(line.Operands)
		line.ElementSize = 1
		*locData += uint16(len(s) + 1)
	case ".byte":
		if line.Operands == "" {
			return NewError(pos, ErrMissingOperand, ".byte requires at least one value")
		}
		count := len(SplitValues(line.Operands))
		line.ElementSize = 1
		*locData += uint16(count)
	case ".word":
		if line.Operands == "" {
			return NewError(pos, ErrMissingOperand, ".word requires at least one value")
		}
		count := len(SplitValues(line.Operands))
		line.ElementSize = 2
		*locData += uint16(count * 2)
	case ".space":
		if line.Operands == "" {
			return NewError(pos, ErrMissingOperand, ".space requires a size operand")
		}
		v, err := ParseImmediate(line.Operands)
		if err != nil {
			return NewError(pos, ErrMalformedNumber, "%s", err)
		}
		line.ElementSize = 1
		*locData += uint16(v)
	default:
		// Unknown directives are left for pass 2's UnknownMnemonic check,
		// which covers "neither a directive nor a known instruction"
		// uniformly instead of silently ignoring them as the C reference
		// does.
	}
	return nil
}
