package parser

import (
	"errors"
	"testing"
)

func TestSymbolTableAddAndLookup(t *testing.T) {
	st := NewSymbolTable()
	if err := st.Add("start", 0x10, SectionText, 3); err != nil {
		t.Fatalf("Add: %v", err)
	}
	sym, ok := st.Lookup("START")
	if !ok {
		t.Fatal("Lookup is case-insensitive, expected a hit")
	}
	if sym.Address != 0x10 || sym.Section != SectionText {
		t.Errorf("symbol = %+v, want address 0x10 in TEXT", sym)
	}
}

func TestSymbolTableDuplicate(t *testing.T) {
	st := NewSymbolTable()
	if err := st.Add("loop", 0, SectionText, 1); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	err := st.Add("LOOP", 4, SectionText, 5)
	if !errors.Is(err, ErrDuplicateLabel) {
		t.Fatalf("Add duplicate = %v, want ErrDuplicateLabel", err)
	}
}

func TestSymbolTableUnused(t *testing.T) {
	st := NewSymbolTable()
	_ = st.Add("used", 0, SectionText, 1)
	_ = st.Add("ignored", 2, SectionText, 2)
	st.MarkReferenced("used")

	unused := st.Unused()
	if len(unused) != 1 || unused[0].Name != "ignored" {
		t.Fatalf("Unused() = %v, want only %q", unused, "ignored")
	}
}

func TestSymbolTableMarkReferencedUnknownIsNoop(t *testing.T) {
	st := NewSymbolTable()
	st.MarkReferenced("nosuch")
	if len(st.Unused()) != 0 {
		t.Fatal("marking an undefined symbol referenced should not panic or add it")
	}
}

func TestSymbolTableAllSorted(t *testing.T) {
	st := NewSymbolTable()
	_ = st.Add("zeta", 0, SectionText, 1)
	_ = st.Add("alpha", 2, SectionText, 2)
	all := st.All()
	if len(all) != 2 || all[0].Name != "alpha" || all[1].Name != "zeta" {
		t.Fatalf("All() = %v, want alphabetical order", all)
	}
}
