package instruction

import (
	"strconv"
	"strings"

	"github.com/ezrec/rvasm/token"
)

// Resolver returns the address of a symbol.
type Resolver func(name string) (address uint32, ok bool)

// High returns the upper 20 bits of value, plus one when bit 11 is set to
// compensate for the sign extension of the low 12 bits.
func High(value int32) int32 {
	v := uint32(value)
	return int32(((v >> 12) + ((v >> 11) & 1)) & 0xfffff)
}

// Low returns the sign extended low 12 bits of value.
func Low(value int32) int32 {
	return int32(uint32(value)<<20) >> 20
}

// operandValue is the numeric value of a literal or symbol operand.
func operandValue(tok token.Token, resolve Resolver) (value int32, err error) {
	if v, ok := tok.Int(); ok {
		value = int32(v)
		return
	}

	if tok.Type == token.IDENTIFIER && resolve != nil {
		address, ok := resolve(tok.Text)
		if ok {
			value = int32(address)
			return
		}
		err = &ErrOperand{Column: tok.Column, Text: tok.Text, Err: ErrUndefinedSymbol}
		return
	}

	err = &ErrOperand{Column: tok.Column, Text: tok.Text, Err: ErrOperandType}
	return
}

var valueMarkers = []string{"PCH", "PCL", "LH", "LL", "VH", "VL"}

// Expand substitutes the operands of a call into the translation
// templates. call[0] is the mnemonic; marker indexes count tokens of the
// call, parentheses included. address is where the first basic instruction
// will be placed.
//
//	RGn       operand text
//	LHn LLn   high/low parts of a symbol address
//	VHn VLn   high/low parts of an immediate
//	PCHn PCLn high/low parts of the operand relative to address
//	LAB       text of the last operand
func (ei *Extended) Expand(call token.List, address uint32, resolve Resolver) (lines []string, err error) {
	lines = make([]string, len(ei.Templates))
	copy(lines, ei.Templates)

	for n := 1; n < len(call); n++ {
		tok := call[n]
		index := strconv.Itoa(n)

		needValue := false
		for _, line := range lines {
			for _, marker := range valueMarkers {
				if strings.Contains(line, marker+index) {
					needValue = true
				}
			}
		}

		var replacer *strings.Replacer
		if needValue {
			var value int32
			value, err = operandValue(tok, resolve)
			if err != nil {
				return
			}
			relative := value - int32(address)
			replacer = strings.NewReplacer(
				"PCH"+index, strconv.Itoa(int(High(relative))),
				"PCL"+index, strconv.Itoa(int(Low(relative))),
				"LH"+index, strconv.Itoa(int(High(value))),
				"LL"+index, strconv.Itoa(int(Low(value))),
				"VH"+index, strconv.Itoa(int(High(value))),
				"VL"+index, strconv.Itoa(int(Low(value))),
				"RG"+index, tok.Text,
			)
		} else {
			replacer = strings.NewReplacer("RG"+index, tok.Text)
		}

		for l := range lines {
			lines[l] = replacer.Replace(lines[l])
		}
	}

	if len(call) > 1 {
		label := call[len(call)-1].Text
		for l := range lines {
			lines[l] = strings.ReplaceAll(lines[l], "LAB", label)
		}
	}

	return
}
