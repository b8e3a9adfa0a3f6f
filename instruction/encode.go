package instruction

import (
	"errors"

	"github.com/ezrec/rvasm/token"
)

// tokenValue converts one operand token to the value encoded for it.
func tokenValue(tok token.Token, resolve Resolver) (value int32, err error) {
	var n int
	var ok bool
	switch tok.Type {
	case token.REGISTER_NAME:
		n, ok = token.Register(tok.Text)
	case token.FP_REGISTER_NAME:
		n, ok = token.FPRegister(tok.Text)
	case token.CSR_NAME:
		n, ok = token.CSR(tok.Text)
	default:
		return operandValue(tok, resolve)
	}
	if !ok {
		err = &ErrOperand{Column: tok.Column, Text: tok.Text, Err: ErrOperandType}
		return
	}
	value = int32(n)
	return
}

// Assemble encodes the operand tokens of a line placed at address.
// Symbol operands are resolved. A symbol as the branch target of a
// relative format is converted to an offset from address; an integer
// target is already an offset.
func (bi *Basic) Assemble(operands token.List, address uint32, resolve Resolver) (word uint32, err error) {
	var values []int32
	var toks []token.Token
	for _, tok := range operands {
		if tok.Type == token.LEFT_PAREN || tok.Type == token.RIGHT_PAREN {
			continue
		}
		var value int32
		value, err = tokenValue(tok, resolve)
		if err != nil {
			return
		}
		values = append(values, value)
		toks = append(toks, tok)
	}

	if len(values) != len(bi.slots()) {
		err = &ErrOperand{Example: bi.example, Err: ErrOperandCount}
		return
	}

	if last := len(values) - 1; bi.Format.IsRelative() && toks[last].Type == token.IDENTIFIER {
		values[last] -= int32(address)
	}

	word, err = bi.Encode(values)
	if err != nil {
		var tok token.Token
		if errors.Is(err, ErrOperandRange) {
			tok = toks[bi.rangeFailure(values)]
		}
		err = &ErrOperand{Column: tok.Column, Text: tok.Text, Example: bi.example, Err: err}
		return
	}

	return
}

// rangeFailure returns the index of the first operand out of range.
func (bi *Basic) rangeFailure(values []int32) int {
	widths := bi.widths()
	slots := bi.slots()
	for k, width := range widths {
		if width == 0 || k >= len(values) {
			continue
		}
		if bi.checkRange(slots[k], k, width, values[k]) != nil {
			return k
		}
	}
	return 0
}
