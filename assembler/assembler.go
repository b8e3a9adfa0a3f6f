// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/ezrec/rvasm/diag"
	"github.com/ezrec/rvasm/directive"
	"github.com/ezrec/rvasm/instruction"
	"github.com/ezrec/rvasm/macro"
	"github.com/ezrec/rvasm/memory"
	"github.com/ezrec/rvasm/symbol"
	"github.com/ezrec/rvasm/token"
)

// Store is the memory an assembled program is written into.
type Store interface {
	Set(address uint32, value uint64, length int) error
	SetWord(address uint32, word uint32) error
}

var _ Store = (*memory.Memory)(nil)

// fileState is the pass 1 state of one source file.
type fileState struct {
	source     *Source
	symbols    *symbol.Table
	macros     macro.Pool
	globals    []token.Token // Operands of .globl and .global.
	forward    []forwardRef
	statements []*Statement

	inData        bool
	dataDirective directive.Directive // Continued by operand-only data lines.
	hasDirective  bool
	autoAlign     bool
}

// Assembler assembles RV32 sources into a Program. Each run starts from
// a fresh global symbol table; an Assembler must not be shared by
// concurrent runs.
type Assembler struct {
	Options
	Layout       memory.Layout    // Segment layout, memory.DefaultLayout if zero.
	Instructions *instruction.Set // Instruction set, instruction.Default if nil.
	Store        Store            // Target memory, a new memory.Memory if nil.

	Diagnostics *diag.List    // Problems of the last run.
	Global      *symbol.Table // Global symbols of the last run.

	files   []*fileState
	forward []forwardRef // Unresolved after their own file.
	layout  memory.Layout
	store   Store
	tk      *token.Tokenizer

	textAddress   uint32
	dataAddress   uint32
	externAddress uint32
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.Equates == nil {
		asm.Equates = map[string]string{name: value}
	} else {
		asm.Equates[name] = value
	}
}

func (asm *Assembler) instructions() *instruction.Set {
	if asm.Instructions == nil {
		return instruction.Default
	}
	return asm.Instructions
}

func (asm *Assembler) tokenizer() *token.Tokenizer {
	return &token.Tokenizer{IsMnemonic: asm.instructions().IsMnemonic}
}

// reset prepares the state of a new run.
func (asm *Assembler) reset() {
	asm.Diagnostics = diag.NewList(asm.ErrorLimit, asm.WarningsAreErrors)
	asm.Global = symbol.NewTable("(global)", nil)

	asm.layout = asm.Layout
	if asm.layout == (memory.Layout{}) {
		asm.layout = memory.DefaultLayout
	}

	asm.store = asm.Store
	if asm.store == nil {
		asm.store = memory.New(asm.layout)
	}

	asm.tk = asm.tokenizer()
	asm.files = nil
	asm.forward = nil
	asm.textAddress = asm.layout.TextBase
	asm.dataAddress = asm.layout.DataBase
	asm.externAddress = asm.layout.ExternBase
}

func (asm *Assembler) errorAt(tok token.Token, err error) {
	asm.Diagnostics.AddError(tok.File, tok.Line, tok.Column, err)
}

func (asm *Assembler) warnAt(tok token.Token, err error) {
	asm.Diagnostics.AddWarning(tok.File, tok.Line, tok.Column, err)
}

// operandError reports an instruction error at its operand, if known.
func (asm *Assembler) operandError(tok token.Token, err error) {
	var eo *instruction.ErrOperand
	if errors.As(err, &eo) && eo.Column > 0 {
		asm.Diagnostics.AddError(tok.File, tok.Line, eo.Column, err)
		return
	}
	asm.errorAt(tok, err)
}

// AssembleFiles loads the named files from fsys and assembles them.
// Includes are resolved in Options.Include, or else in fsys.
func (asm *Assembler) AssembleFiles(fsys fs.FS, names ...string) (prog *Program, err error) {
	includes := asm.Include
	if includes == nil {
		includes = fsys
	}

	var sources []*Source
	for _, name := range names {
		var inf fs.File
		inf, err = fsys.Open(name)
		if err != nil {
			return
		}

		var src *Source
		src, err = asm.parse(name, inf, includes)
		inf.Close()
		if err != nil {
			return
		}
		sources = append(sources, src)
	}

	return asm.Assemble(sources...)
}

// Assemble runs every pass over the sources, in order. On failure the
// returned error is the diag.List of the run.
func (asm *Assembler) Assemble(sources ...*Source) (prog *Program, err error) {
	asm.reset()

	defer func() {
		if asm.Diagnostics.ErrorsOccurred() {
			prog = nil
			err = asm.Diagnostics
		}
	}()

	// Pass 1
	for _, src := range sources {
		if asm.Diagnostics.ErrorLimitExceeded() {
			break
		}
		asm.pass1(src)
	}

	for _, ref := range asm.resolveForward(asm.forward, asm.Global.Address) {
		asm.errorAt(ref.Token, &instruction.ErrOperand{
			Column: ref.Token.Column,
			Text:   ref.Token.Text,
			Err:    instruction.ErrUndefinedSymbol,
		})
	}

	if asm.Diagnostics.ErrorsOccurred() {
		return
	}

	// Pass 2
	if asm.Verbose {
		log.Printf("pass 2")
	}
	var basics []*Statement
	for _, file := range asm.files {
		for _, stmt := range file.statements {
			if asm.Diagnostics.ErrorLimitExceeded() {
				break
			}
			basics = append(basics, asm.translate(stmt)...)
		}
	}

	if asm.Diagnostics.ErrorsOccurred() {
		return
	}

	// Pass 3
	if asm.Verbose {
		log.Printf("pass 3")
	}
	for _, stmt := range basics {
		if asm.Diagnostics.ErrorLimitExceeded() {
			break
		}
		asm.encode(stmt)
	}

	prog = asm.program(basics)
	for n := 1; n < len(prog.Statements); n++ {
		if prog.Statements[n].Address == prog.Statements[n-1].Address {
			stmt := prog.Statements[n]
			asm.Diagnostics.AddError(stmt.File, stmt.Line, 0, ErrDuplicateTextAddress)
		}
	}

	return
}

// pass1 processes every line of a source file, then publishes its
// globals and resolves its forward references.
func (asm *Assembler) pass1(src *Source) {
	if asm.Verbose {
		log.Printf("pass 1: %v", src.Name)
	}

	file := &fileState{
		source:    src,
		symbols:   symbol.NewTable(src.Name, asm.Global),
		autoAlign: true,
	}
	asm.files = append(asm.files, file)

	for _, msg := range src.Errors {
		asm.Diagnostics.Add(msg)
	}

	for index := range src.Lines {
		if asm.Diagnostics.ErrorLimitExceeded() {
			return
		}
		line := &src.Lines[index]
		if line.Tokens == nil {
			continue
		}
		stmts := asm.parseLine(file, index, line, line.Tokens, line.Text)
		file.statements = append(file.statements, stmts...)
	}

	if m := file.macros.Current(); m != nil {
		header := src.Lines[m.FromLine-1]
		asm.Diagnostics.AddError(header.File, header.Number, 0, &ErrName{Name: m.Name, Err: ErrMacroUnterminated})
	}

	asm.moveGlobals(file)

	file.forward = asm.resolveForward(file.forward, file.symbols.Address)
	asm.forward = append(asm.forward, file.forward...)
	file.forward = nil
}

// moveGlobals moves the symbols named by .globl into the global table.
func (asm *Assembler) moveGlobals(file *fileState) {
	moved := map[string]bool{}
	for _, tok := range file.globals {
		if moved[tok.Text] {
			continue
		}

		sym, ok := file.symbols.Symbol(tok.Text)
		if !ok {
			asm.errorAt(tok, &ErrName{Name: tok.Text, Err: ErrUndeclaredGlobal})
			continue
		}

		if _, dup := asm.Global.Symbol(tok.Text); dup {
			asm.errorAt(tok, &ErrName{Name: tok.Text, Err: ErrDuplicateGlobal})
			continue
		}

		file.symbols.Remove(sym.Name)
		_ = asm.Global.Add(sym.Name, sym.Address, sym.IsData)
		moved[sym.Name] = true

		if asm.Verbose {
			log.Printf("%v: global %v = 0x%08x", file.source.Name, sym.Name, sym.Address)
		}
	}
}

// defineLabel binds a label to the current cursor, or records it in the
// macro being defined.
func (asm *Assembler) defineLabel(file *fileState, tok token.Token) {
	if file.macros.Current() != nil {
		file.macros.AddLabel(tok.Text)
		return
	}

	address := asm.textAddress
	if file.inData {
		address = asm.dataAddress
	}

	err := file.symbols.Add(tok.Text, address, file.inData)
	if err != nil {
		asm.errorAt(tok, err)
	}
}

// isDataOperand is true for tokens that continue a data directive.
func isDataOperand(tok token.Token) bool {
	switch {
	case tok.Type.IsNumber():
		return true
	case tok.Type == token.IDENTIFIER, tok.Type == token.QUOTED_STRING:
		return true
	case tok.Type == token.PLUS, tok.Type == token.MINUS:
		return true
	}
	return false
}

// parseLine processes one line of pass 1, returning the statements of
// its instructions. text is the line as tokenized into tokens.
func (asm *Assembler) parseLine(file *fileState, index int, line *Line, tokens token.List, text string) (stmts []*Statement) {
	tl := tokens.WithoutComment()

	for len(tl) >= 2 && tl[0].Type == token.IDENTIFIER && tl[1].Type == token.COLON {
		asm.defineLabel(file, tl[0])
		tl = tl[2:]
	}

	if len(tl) == 0 {
		return
	}

	first := tl[0]
	if first.Type == token.DIRECTIVE {
		d, _ := directive.Lookup(first.Text)
		asm.executeDirective(file, index, line, tl, d)
		return
	}

	// Body of a macro being defined.
	if file.macros.Current() != nil {
		return
	}

	if file.macros.HasName(first.Text) {
		call := macro.NormalizeCall(tl)
		if m := file.macros.Match(call); m != nil {
			return asm.expandMacro(file, index, call, m)
		}
		if !asm.instructions().IsMnemonic(first.Text) {
			asm.errorAt(first, &ErrName{Name: first.Text, Err: ErrMacroNotFound})
			return
		}
	}

	if first.Type == token.IDENTIFIER && strings.HasPrefix(first.Text, ".") {
		asm.warnAt(first, &ErrName{Name: first.Text, Err: ErrDirectiveUnknown})
		return
	}

	if file.inData {
		if file.hasDirective && isDataOperand(first) {
			asm.storeData(file, tl, file.dataDirective)
			return
		}
		asm.errorAt(first, &ErrName{Name: first.Text, Err: ErrSegment})
		return
	}

	ins, err := asm.match(tl)
	if err != nil {
		asm.operandError(first, err)
		return
	}

	stmts = append(stmts, &Statement{
		File:        line.File,
		Line:        line.Number,
		Source:      strings.TrimSpace(text),
		Original:    line.Tokens,
		Tokens:      tl,
		Instruction: ins,
		Address:     asm.textAddress,
		symbols:     file.symbols,
	})
	asm.textAddress += uint32(ins.Size())

	return
}

// match selects the instruction of a line, honoring BasicOnly.
func (asm *Assembler) match(tl token.List) (ins instruction.Instruction, err error) {
	candidates := asm.instructions().Lookup(tl[0].Text)
	if !asm.BasicOnly {
		return instruction.Match(tl, candidates)
	}

	ins, err = instruction.Match(tl, basicsOf(candidates))
	if err != nil {
		if _, xerr := instruction.Match(tl, candidates); xerr == nil {
			err = &ErrName{Name: tl[0].Text, Err: ErrExtendedDisabled}
		}
	}

	return
}

func basicsOf(candidates []instruction.Instruction) (basics []instruction.Instruction) {
	for _, each := range candidates {
		if _, ok := each.(*instruction.Basic); ok {
			basics = append(basics, each)
		}
	}
	return
}

// expandMacro reprocesses the body of m for a call on line index.
func (asm *Assembler) expandMacro(file *fileState, index int, call token.List, m *macro.Macro) (stmts []*Statement) {
	if !file.macros.Stack.Push(index) {
		asm.errorAt(call[0], &ErrName{Name: m.Name, Err: ErrMacroLoop})
		return
	}
	defer file.macros.Stack.Pop()

	counter := file.macros.NextCounter()
	if asm.Verbose {
		log.Printf("%v:%d: expand %v #%d", call[0].File, call[0].Line, m.Name, counter)
	}

	lines := file.source.Lines
	for body := m.FromLine; body <= m.ToLine && body < len(lines); body++ {
		if asm.Diagnostics.ErrorLimitExceeded() {
			break
		}

		bl := &lines[body]
		if bl.Tokens == nil {
			continue
		}

		text, errs := m.Substitute(bl.Text, bl.Tokens, call, counter)
		for _, err := range errs {
			column := 0
			var ep *macro.ErrParameter
			if errors.As(err, &ep) {
				column = ep.Column
			}
			asm.Diagnostics.AddError(bl.File, bl.Number, column, err)
		}

		tl, err := asm.tk.Tokenize(bl.File, bl.Number, text)
		if err != nil {
			asm.Diagnostics.AddError(bl.File, bl.Number, columnOf(err), err)
			continue
		}

		stmts = append(stmts, asm.parseLine(file, body, bl, tl, text)...)
	}

	return
}

// translate returns the basic statements of a statement, expanding
// pseudo instructions.
func (asm *Assembler) translate(stmt *Statement) (basics []*Statement) {
	ei, ok := stmt.Instruction.(*instruction.Extended)
	if !ok {
		basics = append(basics, stmt)
		return
	}

	lines, err := ei.Expand(stmt.Tokens, stmt.Address, stmt.symbols.AddressLocalOrGlobal)
	if err != nil {
		asm.operandError(stmt.Tokens[0], err)
		return
	}

	for n, text := range lines {
		tl, err := asm.tk.Tokenize(stmt.File, stmt.Line, text)
		if err != nil {
			asm.errorAt(stmt.Tokens[0], err)
			continue
		}

		ins, err := instruction.Match(tl, basicsOf(asm.instructions().Lookup(tl[0].Text)))
		if err != nil {
			asm.errorAt(stmt.Tokens[0], &ErrName{Name: text, Err: err})
			continue
		}

		basic := &Statement{
			File:        stmt.File,
			Line:        stmt.Line,
			Original:    stmt.Original,
			Tokens:      tl,
			Instruction: ins,
			Address:     stmt.Address + uint32(4*n),
			symbols:     stmt.symbols,
		}
		if n == 0 {
			basic.Source = stmt.Source
		}
		basics = append(basics, basic)
	}

	return
}

// encode computes the machine word of a basic statement and stores it.
func (asm *Assembler) encode(stmt *Statement) {
	bi := stmt.Instruction.(*instruction.Basic)

	word, err := bi.Assemble(stmt.Tokens[1:], stmt.Address, stmt.symbols.AddressLocalOrGlobal)
	if err != nil {
		var eo *instruction.ErrOperand
		if bi.Format.IsRelative() && errors.Is(err, instruction.ErrOperandRange) && errors.As(err, &eo) {
			err = &instruction.ErrOperand{Column: eo.Column, Text: eo.Text, Err: ErrBranchRange}
		}
		asm.operandError(stmt.Tokens[0], err)
		return
	}

	values := map[int]int32{}
	operands := len(stmt.Tokens) - 1
	for n, tok := range stmt.Tokens {
		if tok.Type != token.IDENTIFIER || n == 0 {
			continue
		}
		address, _ := stmt.symbols.AddressLocalOrGlobal(tok.Text)
		value := int32(address)
		if bi.Format.IsRelative() && n == operands {
			value -= int32(stmt.Address)
		}
		values[n] = value
	}

	stmt.Word = word
	stmt.Basic = basicText(stmt.Tokens, values)

	err = asm.store.SetWord(stmt.Address, word)
	if err != nil {
		asm.errorAt(stmt.Tokens[0], err)
	}
}
