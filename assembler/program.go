package assembler

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/ezrec/rvasm/internal"
	"github.com/ezrec/rvasm/symbol"
)

// Program is the result of a successful run.
type Program struct {
	Statements []*Statement    // Basic statements in address order.
	Symbols    []*symbol.Table // Global table, then one local table per file.
	Store      Store           // Memory holding the data and text segments.
	Entry      uint32          // Address execution starts at.
}

// program collects the basic statements and symbol tables of a run.
func (asm *Assembler) program(basics []*Statement) (prog *Program) {
	prog = &Program{
		Statements: slices.Clone(basics),
		Symbols:    []*symbol.Table{asm.Global},
		Store:      asm.store,
		Entry:      asm.layout.TextBase,
	}

	slices.SortStableFunc(prog.Statements, func(a, b *Statement) int {
		return cmp.Compare(a.Address, b.Address)
	})

	for _, file := range asm.files {
		prog.Symbols = append(prog.Symbols, file.symbols)
	}

	if asm.StartAtMain {
		if address, ok := asm.Global.Address(symbol.ENTRY_POINT); ok {
			prog.Entry = address
		}
	}

	return
}

// Debug returns the statement at a text address.
func (prog *Program) Debug(address uint32) (stmt *Statement, ok bool) {
	n, ok := slices.BinarySearchFunc(prog.Statements, address, func(st *Statement, target uint32) int {
		return cmp.Compare(st.Address, target)
	})
	if ok {
		stmt = prog.Statements[n]
	}
	return
}

// Binary iterates over the machine words in address order.
func (prog *Program) Binary() iter.Seq2[uint32, uint32] {
	return func(yield func(address uint32, word uint32) bool) {
		for _, stmt := range prog.Statements {
			if !yield(stmt.Address, stmt.Word) {
				return
			}
		}
	}
}

// AllSymbols iterates over the global symbols, then each file's locals.
func (prog *Program) AllSymbols() iter.Seq[symbol.Symbol] {
	var seqs []iter.Seq[symbol.Symbol]
	for _, table := range prog.Symbols {
		seqs = append(seqs, table.All())
	}
	return internal.IterSeqConcat(seqs...)
}

// DataSymbols iterates over the symbols of the data segment.
func (prog *Program) DataSymbols() iter.Seq[symbol.Symbol] {
	return internal.IterSeqFilter(prog.AllSymbols(), func(sym symbol.Symbol) bool {
		return sym.IsData
	})
}

// Symbol finds a symbol by name, global symbols first.
func (prog *Program) Symbol(name string) (sym symbol.Symbol, ok bool) {
	for _, table := range prog.Symbols {
		sym, ok = table.Symbol(name)
		if ok {
			return
		}
	}
	return
}

// WriteListing writes one line per basic statement.
func (prog *Program) WriteListing(w io.Writer) (err error) {
	for _, stmt := range prog.Statements {
		_, err = fmt.Fprintln(w, stmt)
		if err != nil {
			return
		}
	}
	return
}

// WriteSymbols writes the symbol tables, sorted by address.
func (prog *Program) WriteSymbols(w io.Writer) (err error) {
	for _, table := range prog.Symbols {
		syms := slices.Collect(table.All())
		if len(syms) == 0 {
			continue
		}
		slices.SortStableFunc(syms, func(a, b symbol.Symbol) int {
			return cmp.Compare(a.Address, b.Address)
		})

		_, err = fmt.Fprintf(w, "%v:\n", table.Name)
		if err != nil {
			return
		}
		for _, sym := range syms {
			kind := "text"
			if sym.IsData {
				kind = "data"
			}
			_, err = fmt.Fprintf(w, "  0x%08x %v %v\n", sym.Address, kind, sym.Name)
			if err != nil {
				return
			}
		}
	}
	return
}
