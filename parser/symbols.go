package parser

import (
	"sort"
	"strings"
)

// Symbol is a label definition: a name bound to an address within a
// section. Names are canonicalized to lower case; never mutated once
// added.
type Symbol struct {
	Name       string
	Address    uint16
	Section    Section
	DefLine    int
	referenced bool
}

// SymbolTable is a case-insensitive label -> Symbol map built during
// pass 1 and consulted (read-only) during pass 2.
type SymbolTable struct {
	symbols map[string]*Symbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Add defines a new symbol. Returns the ErrDuplicateLabel error kind if
// name (compared case-insensitively) is already defined; callers attach
// source position context.
func (st *SymbolTable) Add(name string, address uint16, section Section, defLine int) error {
	key := strings.ToLower(name)
	if _, exists := st.symbols[key]; exists {
		return ErrDuplicateLabel
	}
	st.symbols[key] = &Symbol{
		Name:    key,
		Address: address,
		Section: section,
		DefLine: defLine,
	}
	return nil
}

// Lookup finds a symbol by name, case-insensitively.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.symbols[strings.ToLower(name)]
	return sym, ok
}

// MarkReferenced records that name was used as an operand, for the
// unused-label diagnostic. A reference to an undefined name is a no-op;
// the caller is expected to have already reported UndefinedLabel.
func (st *SymbolTable) MarkReferenced(name string) {
	if sym, ok := st.symbols[strings.ToLower(name)]; ok {
		sym.referenced = true
	}
}

// All returns every symbol, sorted by name, for the verbose dump and the
// interactive browser.
func (st *SymbolTable) All() []*Symbol {
	out := make([]*Symbol, 0, len(st.symbols))
	for _, sym := range st.symbols {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Unused returns symbols that were defined but never referenced by a
// branch or jump, in name order.
func (st *SymbolTable) Unused() []*Symbol {
	var out []*Symbol
	for _, sym := range st.All() {
		if !sym.referenced {
			out = append(out, sym)
		}
	}
	return out
}
