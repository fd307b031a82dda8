package parser

import "testing"

func TestParseAddressAssignment(t *testing.T) {
	src := ".text\nstart: add x1, x2\naddi x3, 5\n.data\nvals: .byte 1, 2\n"
	prog, err := Parse("test.s", src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	sym, ok := prog.Symbols.Lookup("start")
	if !ok || sym.Address != 0 || sym.Section != SectionText {
		t.Fatalf("symbol start = %+v, ok=%v, want address 0 in TEXT", sym, ok)
	}
	vals, ok := prog.Symbols.Lookup("vals")
	if !ok || vals.Address != 0 || vals.Section != SectionData {
		t.Fatalf("symbol vals = %+v, ok=%v, want address 0 in DATA", vals, ok)
	}

	var addiLine *Line
	for _, line := range prog.Lines {
		if line.Mnemonic == "addi" {
			addiLine = line
		}
	}
	if addiLine == nil {
		t.Fatal("addi line not found")
	}
	if addiLine.Address != 2 {
		t.Errorf("addi address = %d, want 2", addiLine.Address)
	}
}

func TestParseOrgOverridesLocationCounter(t *testing.T) {
	src := ".text\n.org 0x100\nstart: add x0, x0\n"
	prog, err := Parse("test.s", src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sym, ok := prog.Symbols.Lookup("start")
	if !ok || sym.Address != 0x100 {
		t.Fatalf("symbol start = %+v, ok=%v, want address 0x100", sym, ok)
	}
}

func TestParseDuplicateLabel(t *testing.T) {
	src := ".text\nstart: add x0, x0\nstart: add x0, x0\n"
	if _, err := Parse("test.s", src); err == nil {
		t.Fatal("expected a duplicate-label error")
	}
}

func TestParseAsciizAdvancesByLengthPlusOne(t *testing.T) {
	src := ".data\nmsg: .asciiz \"hi\"\nafter: .byte 9\n"
	prog, err := Parse("test.s", src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	after, ok := prog.Symbols.Lookup("after")
	if !ok || after.Address != 3 {
		t.Fatalf("symbol after = %+v, ok=%v, want address 3 (2 chars + NUL)", after, ok)
	}
}

func TestParseMissingOperandOnDirective(t *testing.T) {
	if _, err := Parse("test.s", ".data\n.byte\n"); err == nil {
		t.Fatal("expected a missing-operand error for .byte with no values")
	}
}

func TestParseCommentsAndBlankLinesAreIgnored(t *testing.T) {
	src := ".text\n; a leading comment\n\nstart: add x0, x0 # trailing\n"
	prog, err := Parse("test.s", src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sym, ok := prog.Symbols.Lookup("start")
	if !ok || sym.Address != 0 {
		t.Fatalf("symbol start = %+v, ok=%v, want address 0", sym, ok)
	}
}
