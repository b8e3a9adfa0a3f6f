package instruction

import (
	"strings"

	"github.com/ezrec/rvasm/token"
)

// MASK_LENGTH is the number of characters of an operation mask.
const MASK_LENGTH = 32

// OPERAND_LETTERS name the operand bit fields of a mask, in operand order.
const OPERAND_LETTERS = "fstqp"

// CompileMask converts an operation mask into the opcode mask and match
// pair. Operand letters contribute 0 to both.
func CompileMask(mask string) (opMask, opMatch uint32, err error) {
	if len(mask) != MASK_LENGTH {
		err = ErrMaskSyntax
		return
	}

	for n := range MASK_LENGTH {
		bit := uint32(1) << (MASK_LENGTH - 1 - n)
		switch c := mask[n]; {
		case c == '0':
			opMask |= bit
		case c == '1':
			opMask |= bit
			opMatch |= bit
		case strings.IndexByte(OPERAND_LETTERS, c) >= 0:
		default:
			err = ErrMaskSyntax
			return
		}
	}

	return
}

// widths counts the mask bits of each operand field.
func (bi *Basic) widths() (widths [len(OPERAND_LETTERS)]int) {
	for n := range MASK_LENGTH {
		if k := strings.IndexByte(OPERAND_LETTERS, bi.Mask[n]); k >= 0 {
			widths[k]++
		}
	}
	return
}

// slots returns the operand format without parentheses; slot k is
// encoded in the field of OPERAND_LETTERS[k].
func (bi *Basic) slots() (slots []token.Type) {
	for _, tok := range bi.operands {
		if tok.Type != token.LEFT_PAREN && tok.Type != token.RIGHT_PAREN {
			slots = append(slots, tok.Type)
		}
	}
	return
}

// checkRange verifies an operand value fits its field.
func (bi *Basic) checkRange(slot token.Type, k int, width int, value int32) (err error) {
	switch {
	case bi.Format.IsRelative() && k == len(bi.slots())-1:
		limit := int32(1) << width
		if value&1 != 0 || value < -limit || value >= limit {
			err = ErrOperandRange
		}
	case slot == token.CSR_NAME:
		if value < 0 || value >= 1<<width {
			err = ErrOperandRange
		}
	case slot.IsInteger():
		v := int64(value)
		if width < 32 && (v < -(int64(1)<<(width-1)) || v >= int64(1)<<width) {
			err = ErrOperandRange
		}
	}
	return
}

// Encode fills the operand fields of the mask with the operand values,
// given in operand order. Fields are filled most significant bit first.
func (bi *Basic) Encode(operands []int32) (word uint32, err error) {
	widths := bi.widths()
	slots := bi.slots()

	var values [len(OPERAND_LETTERS)]uint32
	for k, width := range widths {
		if width == 0 {
			continue
		}
		if k >= len(operands) || k >= len(slots) {
			err = ErrOperandCount
			return
		}
		err = bi.checkRange(slots[k], k, width, operands[k])
		if err != nil {
			return
		}
		values[k] = uint32(operands[k])
		if bi.Format.IsRelative() && k == len(slots)-1 {
			values[k] = bi.Format.scramble(operands[k])
		}
	}

	word = bi.OpcodeMatch
	remaining := widths
	for n := range MASK_LENGTH {
		k := strings.IndexByte(OPERAND_LETTERS, bi.Mask[n])
		if k < 0 {
			continue
		}
		remaining[k]--
		bit := (values[k] >> remaining[k]) & 1
		word |= bit << (MASK_LENGTH - 1 - n)
	}

	return
}

// Matches reports whether word is an encoding of this instruction.
func (bi *Basic) Matches(word uint32) bool {
	return word&bi.OpcodeMask == bi.OpcodeMatch
}

// DecodeOperands extracts the operand values of an encoded word, in
// operand order. Immediates are sign extended and branch offsets restored.
func (bi *Basic) DecodeOperands(word uint32) (operands []int32) {
	widths := bi.widths()
	slots := bi.slots()

	var fields [len(OPERAND_LETTERS)]uint32
	for n := range MASK_LENGTH {
		k := strings.IndexByte(OPERAND_LETTERS, bi.Mask[n])
		if k < 0 {
			continue
		}
		fields[k] = fields[k]<<1 | (word>>(MASK_LENGTH-1-n))&1
	}

	for k, slot := range slots {
		width := widths[k]
		value := int32(fields[k])
		switch {
		case bi.Format.IsRelative() && k == len(slots)-1:
			value = bi.Format.unscramble(fields[k])
		case slot == token.INTEGER_12 && width > 0 && width < 32:
			shift := 32 - width
			value = int32(fields[k]<<shift) >> shift
		}
		operands = append(operands, value)
	}

	return
}
