package assembler

import (
	"math"
	"strings"

	"github.com/ezrec/rvasm/directive"
	"github.com/ezrec/rvasm/token"
)

// dataSections are the section names that select the data segment.
var dataSections = []string{".data", ".rodata", ".bss", ".sdata", ".sbss"}

// executeDirective applies the directive that starts tl.
func (asm *Assembler) executeDirective(file *fileState, index int, line *Line, tl token.List, d directive.Directive) {
	first := tl[0]
	operands := tl[1:]

	switch d {
	case directive.MACRO:
		if err := file.macros.Begin(tl, index, line.Number); err != nil {
			asm.errorAt(first, err)
		}
		return
	case directive.END_MACRO:
		if _, err := file.macros.Commit(index, line.Number); err != nil {
			asm.errorAt(first, err)
		}
		return
	}

	if file.macros.Current() != nil {
		return
	}

	switch d {
	case directive.EQV, directive.INCLUDE:
		// Applied while loading the source.
	case directive.DATA, directive.TEXT:
		asm.segment(file, first, operands, d == directive.DATA)
	case directive.SECTION:
		if len(operands) != 1 {
			asm.errorAt(first, &ErrName{Name: first.Text, Err: ErrDirectiveSyntax})
			return
		}
		name := strings.ToLower(operands[0].Text)
		switch {
		case strings.HasPrefix(name, ".text"):
			asm.segment(file, first, nil, false)
		case hasAnyPrefix(name, dataSections...):
			asm.segment(file, first, nil, true)
		default:
			asm.warnAt(operands[0], &ErrName{Name: operands[0].Text, Err: ErrSegment})
		}
	case directive.ALIGN:
		asm.align(file, first, operands)
	case directive.SPACE:
		if !file.inData {
			asm.errorAt(first, &ErrName{Name: first.Text, Err: ErrSegment})
			return
		}
		size, ok := asm.nonNegative(first, operands)
		if !ok {
			return
		}
		asm.dataAddress += uint32(size)
	case directive.EXTERN:
		asm.extern(first, operands)
	case directive.GLOBL, directive.GLOBAL:
		if len(operands) == 0 {
			asm.errorAt(first, &ErrName{Name: first.Text, Err: ErrDirectiveSyntax})
			return
		}
		for _, tok := range operands {
			if tok.Type != token.IDENTIFIER {
				asm.errorAt(tok, &ErrName{Name: tok.Text, Err: ErrDirectiveSyntax})
				continue
			}
			file.globals = append(file.globals, tok)
		}
	default:
		if !file.inData {
			asm.errorAt(first, &ErrName{Name: first.Text, Err: ErrSegment})
			return
		}
		file.dataDirective = d
		file.hasDirective = true
		if len(operands) == 0 {
			asm.errorAt(first, &ErrName{Name: first.Text, Err: ErrDirectiveSyntax})
			return
		}
		asm.storeData(file, operands, d)
	}
}

func hasAnyPrefix(name string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// segment switches to the text or data segment, optionally moving its
// cursor.
func (asm *Assembler) segment(file *fileState, tok token.Token, operands token.List, data bool) {
	file.inData = data
	file.autoAlign = true
	file.hasDirective = false

	switch len(operands) {
	case 0:
		return
	case 1:
	default:
		asm.errorAt(tok, &ErrName{Name: tok.Text, Err: ErrDirectiveSyntax})
		return
	}

	value, ok := operands[0].Int()
	if !ok || value < 0 || value > math.MaxUint32 {
		asm.errorAt(operands[0], &ErrName{Name: operands[0].Text, Err: ErrValueInvalid})
		return
	}

	if data {
		asm.dataAddress = uint32(value)
	} else {
		asm.textAddress = uint32(value)
	}
}

// nonNegative returns the single non-negative integer operand of a
// directive.
func (asm *Assembler) nonNegative(tok token.Token, operands token.List) (value int64, ok bool) {
	if len(operands) != 1 {
		asm.errorAt(tok, &ErrName{Name: tok.Text, Err: ErrDirectiveSyntax})
		return
	}

	value, ok = operands[0].Int()
	if !ok || value < 0 || value > math.MaxUint32 {
		asm.errorAt(operands[0], &ErrName{Name: operands[0].Text, Err: ErrValueInvalid})
		ok = false
	}
	return
}

// alignTo rounds address up to a power of two boundary, moving the
// labels already bound to address along with it.
func (asm *Assembler) alignTo(file *fileState, address uint32, boundary uint32) uint32 {
	aligned := (address + boundary - 1) &^ (boundary - 1)
	if aligned != address {
		file.symbols.FixAddress(address, aligned)
	}
	return aligned
}

// align applies `.align n`, where 0 disables automatic data alignment.
func (asm *Assembler) align(file *fileState, tok token.Token, operands token.List) {
	n, ok := asm.nonNegative(tok, operands)
	if !ok {
		return
	}

	if n > 31 {
		asm.errorAt(operands[0], &ErrName{Name: operands[0].Text, Err: ErrValueInvalid})
		return
	}

	if n == 0 {
		file.autoAlign = false
		return
	}

	if file.inData {
		asm.dataAddress = asm.alignTo(file, asm.dataAddress, 1<<n)
		return
	}

	if n < 2 {
		asm.warnAt(operands[0], ErrTextAlignment)
		n = 2
	}
	asm.textAddress = asm.alignTo(file, asm.textAddress, 1<<n)
}

// extern reserves `.extern name size` bytes in the extern area, unless
// name is already global.
func (asm *Assembler) extern(tok token.Token, operands token.List) {
	if len(operands) != 2 || operands[0].Type != token.IDENTIFIER {
		asm.errorAt(tok, &ErrName{Name: tok.Text, Err: ErrDirectiveSyntax})
		return
	}

	size, ok := asm.nonNegative(tok, operands[1:])
	if !ok {
		return
	}

	name := operands[0].Text
	if _, ok := asm.Global.Symbol(name); ok {
		return
	}

	_ = asm.Global.Add(name, asm.externAddress, true)
	asm.externAddress += uint32(size)
}

// alignData returns the data cursor, aligned to width when automatic
// alignment is on.
func (asm *Assembler) alignData(file *fileState, width int) uint32 {
	if file.autoAlign && width > 1 {
		asm.dataAddress = asm.alignTo(file, asm.dataAddress, uint32(width))
	}
	return asm.dataAddress
}

// storeValue writes width bytes of value at the aligned data cursor.
func (asm *Assembler) storeValue(file *fileState, tok token.Token, value uint64, width int) {
	address := asm.alignData(file, width)
	if err := asm.store.Set(address, value, width); err != nil {
		asm.errorAt(tok, err)
	}
	asm.dataAddress = address + uint32(width)
}

// fitsWidth is true if value is representable, signed or unsigned, in
// width bytes.
func fitsWidth(value int64, width int) bool {
	switch width {
	case 1:
		return value >= math.MinInt8 && value <= math.MaxUint8
	case 2:
		return value >= math.MinInt16 && value <= math.MaxUint16
	case 4:
		return value >= math.MinInt32 && value <= math.MaxUint32
	}
	return true
}

// checkWidth warns when an integer will be truncated.
func (asm *Assembler) checkWidth(tok token.Token, value int64, width int) {
	if !fitsWidth(value, width) {
		asm.warnAt(tok, &ErrName{Name: tok.Text, Err: ErrValueRange})
	}
}

// floatBits returns the IEEE 754 encoding of a float or double directive
// value.
func (asm *Assembler) floatBits(tok token.Token, d directive.Directive) (bits uint64, ok bool) {
	value, ok := tok.Float()
	if !ok {
		asm.errorAt(tok, &ErrName{Name: tok.Text, Err: ErrValueInvalid})
		return
	}

	if d == directive.DOUBLE {
		bits = math.Float64bits(value)
		return
	}

	if math.Abs(value) > math.MaxFloat32 {
		asm.warnAt(tok, &ErrName{Name: tok.Text, Err: ErrValueRange})
	}
	bits = uint64(math.Float32bits(float32(value)))
	return
}

// storeData stores the operands of a data directive.
func (asm *Assembler) storeData(file *fileState, operands token.List, d directive.Directive) {
	if len(operands) == 3 && operands[1].Type == token.COLON {
		asm.storeRepeated(file, operands, d)
		return
	}

	switch {
	case d.IsString():
		for _, tok := range operands {
			asm.storeString(file, tok, d)
		}
	case d.IsFloat():
		for _, tok := range operands {
			if bits, ok := asm.floatBits(tok, d); ok {
				asm.storeValue(file, tok, bits, d.Width())
			}
		}
	case d.IsInteger():
		asm.storeIntegers(file, operands, d.Width())
	}
}

// storeRepeated stores `value : count` copies of a value.
func (asm *Assembler) storeRepeated(file *fileState, operands token.List, d directive.Directive) {
	value, count := operands[0], operands[2]

	n, ok := count.Int()
	if !ok || n <= 0 || uint64(n)*uint64(d.Width()) > (1<<32)-uint64(asm.dataAddress) {
		asm.errorAt(count, &ErrName{Name: count.Text, Err: ErrValueInvalid})
		return
	}

	var bits uint64
	switch {
	case d.IsInteger():
		v, ok := value.Int()
		if !ok {
			asm.errorAt(value, &ErrName{Name: value.Text, Err: ErrValueInvalid})
			return
		}
		asm.checkWidth(value, v, d.Width())
		bits = uint64(v)
	case d.IsFloat():
		bits, ok = asm.floatBits(value, d)
		if !ok {
			return
		}
	default:
		asm.errorAt(operands[1], &ErrName{Name: d.String(), Err: ErrDirectiveSyntax})
		return
	}

	for range n {
		asm.storeValue(file, value, bits, d.Width())
	}
}

// storeIntegers stores integer literals and symbol references, the
// latter optionally offset as in `label+4` or `label-4`.
func (asm *Assembler) storeIntegers(file *fileState, operands token.List, width int) {
	for n := 0; n < len(operands); n++ {
		tok := operands[n]
		switch tok.Type {
		case token.IDENTIFIER:
			var offset int64
			if n+2 < len(operands) && operands[n+2].Type.IsInteger() {
				switch operands[n+1].Type {
				case token.PLUS:
					offset, _ = operands[n+2].Int()
					n += 2
				case token.MINUS:
					offset, _ = operands[n+2].Int()
					offset = -offset
					n += 2
				}
			}
			asm.storeSymbol(file, tok, offset, width)
		default:
			value, ok := tok.Int()
			if !ok {
				asm.errorAt(tok, &ErrName{Name: tok.Text, Err: ErrValueInvalid})
				continue
			}
			asm.checkWidth(tok, value, width)
			asm.storeValue(file, tok, uint64(value), width)
		}
	}
}

// storeSymbol stores the address of a symbol, or a zero placeholder and
// a forward reference when it is not yet defined.
func (asm *Assembler) storeSymbol(file *fileState, tok token.Token, offset int64, width int) {
	address := asm.alignData(file, width)

	var value uint64
	if target, ok := file.symbols.AddressLocalOrGlobal(tok.Text); ok {
		value = uint64(int64(target) + offset)
	} else {
		file.forward = append(file.forward, forwardRef{
			Address: address,
			Length:  width,
			Offset:  offset,
			Token:   tok,
		})
	}

	asm.storeValue(file, tok, value, width)
}

// storeString stores the bytes of a quoted string, NUL terminated
// unless the directive is .ascii.
func (asm *Assembler) storeString(file *fileState, tok token.Token, d directive.Directive) {
	if tok.Type != token.QUOTED_STRING || len(tok.Text) < 2 {
		asm.errorAt(tok, &ErrName{Name: tok.Text, Err: ErrValueInvalid})
		return
	}

	str, err := token.Unescape(tok.Text[1 : len(tok.Text)-1])
	if err != nil {
		asm.errorAt(tok, err)
		return
	}

	data := []byte(str)
	if d != directive.ASCII {
		data = append(data, 0)
	}

	for _, b := range data {
		asm.storeValue(file, tok, uint64(b), 1)
	}
}
