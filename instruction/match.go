package instruction

import (
	"github.com/ezrec/rvasm/token"
)

// fits reports whether the operand tokens fit an operand format.
func fits(operands token.List, format token.List) bool {
	if len(operands) != len(format) {
		return false
	}
	for n, tok := range operands {
		if !tok.Type.FitsIn(format[n].Type) {
			return false
		}
	}
	return true
}

// Match selects the first candidate whose operand format fits the line
// tokens, where tokens[0] is the mnemonic. On failure the error points at
// the first operand that does not fit the closest candidate.
func Match(tokens token.List, candidates []Instruction) (match Instruction, err error) {
	if len(tokens) == 0 {
		err = ErrInstructionUnknown
		return
	}

	mnemonic := tokens[0]
	if len(candidates) == 0 {
		err = &ErrOperand{Column: mnemonic.Column, Text: mnemonic.Text, Err: ErrInstructionUnknown}
		return
	}

	operands := tokens[1:]
	var closest Instruction
	for _, ins := range candidates {
		format := ins.Operands()
		if len(format) != len(operands) {
			continue
		}
		if closest == nil {
			closest = ins
		}
		if fits(operands, format) {
			match = ins
			return
		}
	}

	if closest == nil {
		err = &ErrOperand{
			Column:  mnemonic.Column,
			Text:    mnemonic.Text,
			Example: candidates[0].Example(),
			Err:     ErrOperandFormat,
		}
		return
	}

	format := closest.Operands()
	for n, tok := range operands {
		if !tok.Type.FitsIn(format[n].Type) {
			err = &ErrOperand{Column: tok.Column, Text: tok.Text, Example: closest.Example(), Err: ErrOperandType}
			return
		}
	}

	return
}
