// Package assembler is a two pass macro assembler for RV32 programs.
//
// Sources are loaded with Parse, which applies .eqv substitution, .include
// splicing and $(expr) evaluation, then assembled together by Assemble:
//
//   - pass 1 defines labels, expands macros, executes directives and
//     lays out the data segment;
//   - pass 2 translates pseudo instructions into basic instructions;
//   - pass 3 encodes every basic instruction into the memory store.
//
// Problems are collected in a diag.List rather than stopping the run at
// the first one.
package assembler
