package assembler

import (
	"fmt"
	"strings"

	"github.com/ezrec/rvasm/instruction"
	"github.com/ezrec/rvasm/symbol"
	"github.com/ezrec/rvasm/token"
)

// Statement is one instruction of the program.
type Statement struct {
	File   string // Source file.
	Line   int    // Source line number.
	Source string // Source text; empty for the second and later basic instructions of a pseudo instruction.

	Original token.List // Tokens as written, before macro substitution.
	Tokens   token.List // Tokens assembled, label and comment removed.

	Instruction instruction.Instruction
	Address     uint32

	Basic string // Basic instruction text, once translated.
	Word  uint32 // Machine word, once encoded.

	symbols *symbol.Table
}

// IsBasic is true when the statement holds a basic instruction.
func (st *Statement) IsBasic() bool {
	_, ok := st.Instruction.(*instruction.Basic)
	return ok
}

// String returns a listing line for the statement.
func (st *Statement) String() string {
	line := fmt.Sprintf("0x%08x  0x%08x  %-24v", st.Address, st.Word, st.Basic)
	if len(st.Source) != 0 {
		line += fmt.Sprintf(" %5d: %v", st.Line, st.Source)
	}
	return strings.TrimRight(line, " ")
}

// basicText renders operand tokens with numbered registers and symbols
// replaced by their values.
func basicText(tl token.List, values map[int]int32) string {
	var sb strings.Builder
	if len(tl) == 0 {
		return ""
	}
	sb.WriteString(strings.ToLower(tl[0].Text))

	sep := " "
	for n, tok := range tl[1:] {
		switch tok.Type {
		case token.LEFT_PAREN:
			sb.WriteString("(")
			sep = ""
			continue
		case token.RIGHT_PAREN:
			sb.WriteString(")")
			continue
		}
		sb.WriteString(sep)
		sep = ","

		if value, ok := values[n+1]; ok {
			fmt.Fprintf(&sb, "%d", value)
			continue
		}

		switch tok.Type {
		case token.REGISTER_NAME:
			reg, _ := token.Register(tok.Text)
			fmt.Fprintf(&sb, "x%d", reg)
		case token.FP_REGISTER_NAME:
			reg, _ := token.FPRegister(tok.Text)
			fmt.Fprintf(&sb, "f%d", reg)
		default:
			sb.WriteString(tok.Text)
		}
	}

	return sb.String()
}
