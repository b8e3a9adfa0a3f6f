// Package symbol implements the label symbol tables of the assembler.
package symbol

import (
	"iter"
	"slices"
)

// ENTRY_POINT is the global symbol used to start execution at main.
const ENTRY_POINT = "main"

// Symbol is a named address in the text or data segment.
type Symbol struct {
	Name    string
	Address uint32
	IsData  bool
}

// Table is an ordered collection of uniquely named symbols. A local table
// falls back to its global table on lookups.
type Table struct {
	Name   string // Owning file, or "(global)".
	Global *Table // Fallback table, nil for the global table itself.

	symbols []Symbol
	index   map[string]int
}

// NewTable creates an empty table.
func NewTable(name string, global *Table) *Table {
	return &Table{
		Name:   name,
		Global: global,
		index:  make(map[string]int),
	}
}

// Len is the number of symbols in the table.
func (st *Table) Len() int {
	return len(st.symbols)
}

// Add defines a new symbol. Redefining an existing name fails with
// ErrDuplicateSymbol and leaves the table unchanged.
func (st *Table) Add(name string, address uint32, isData bool) (err error) {
	if st.index == nil {
		st.index = make(map[string]int)
	}

	if _, ok := st.index[name]; ok {
		err = &ErrSymbol{Name: name, Err: ErrDuplicateSymbol}
		return
	}

	st.index[name] = len(st.symbols)
	st.symbols = append(st.symbols, Symbol{Name: name, Address: address, IsData: isData})
	return
}

// Remove deletes a symbol, returning it.
func (st *Table) Remove(name string) (sym Symbol, ok bool) {
	n, ok := st.index[name]
	if !ok {
		return
	}

	sym = st.symbols[n]
	st.symbols = slices.Delete(st.symbols, n, n+1)
	delete(st.index, name)
	for i := n; i < len(st.symbols); i++ {
		st.index[st.symbols[i].Name] = i
	}

	return
}

// Symbol finds a symbol of this table by name.
func (st *Table) Symbol(name string) (sym Symbol, ok bool) {
	n, ok := st.index[name]
	if ok {
		sym = st.symbols[n]
	}
	return
}

// Address returns the address of a symbol of this table.
func (st *Table) Address(name string) (address uint32, ok bool) {
	sym, ok := st.Symbol(name)
	address = sym.Address
	return
}

// AddressLocalOrGlobal looks up name in this table, then in the global table.
func (st *Table) AddressLocalOrGlobal(name string) (address uint32, ok bool) {
	address, ok = st.Address(name)
	if !ok && st.Global != nil {
		address, ok = st.Global.Address(name)
	}
	return
}

// SymbolAt returns the first symbol defined at address.
func (st *Table) SymbolAt(address uint32) (sym Symbol, ok bool) {
	n := slices.IndexFunc(st.symbols, func(sym Symbol) bool { return sym.Address == address })
	if n >= 0 {
		sym, ok = st.symbols[n], true
	}
	return
}

// FixAddress moves every symbol at oldAddress to newAddress, returning the
// number of symbols moved.
func (st *Table) FixAddress(oldAddress, newAddress uint32) (moved int) {
	for n := range st.symbols {
		if st.symbols[n].Address == oldAddress {
			st.symbols[n].Address = newAddress
			moved++
		}
	}
	return
}

// All iterates over the symbols in definition order.
func (st *Table) All() iter.Seq[Symbol] {
	return slices.Values(st.symbols)
}

// DataSymbols returns the symbols of the data segment.
func (st *Table) DataSymbols() (syms []Symbol) {
	for _, sym := range st.symbols {
		if sym.IsData {
			syms = append(syms, sym)
		}
	}
	return
}

// TextSymbols returns the symbols of the text segment.
func (st *Table) TextSymbols() (syms []Symbol) {
	for _, sym := range st.symbols {
		if !sym.IsData {
			syms = append(syms, sym)
		}
	}
	return
}

// Clear removes every symbol.
func (st *Table) Clear() {
	st.symbols = st.symbols[:0]
	clear(st.index)
}
