// Package directive enumerates the assembler directives.
package directive

import (
	"iter"
	"strings"
)

// Directive is an assembler directive keyword.
type Directive int

//go:generate go tool stringer -linecomment -type=Directive
const (
	DATA      = Directive(0)  // .data
	TEXT      = Directive(1)  // .text
	WORD      = Directive(2)  // .word
	DWORD     = Directive(3)  // .dword
	HALF      = Directive(4)  // .half
	BYTE      = Directive(5)  // .byte
	FLOAT     = Directive(6)  // .float
	DOUBLE    = Directive(7)  // .double
	ASCII     = Directive(8)  // .ascii
	ASCIZ     = Directive(9)  // .asciz
	STRING    = Directive(10) // .string
	ALIGN     = Directive(11) // .align
	SPACE     = Directive(12) // .space
	EXTERN    = Directive(13) // .extern
	GLOBL     = Directive(14) // .globl
	GLOBAL    = Directive(15) // .global
	EQV       = Directive(16) // .eqv
	MACRO     = Directive(17) // .macro
	END_MACRO = Directive(18) // .end_macro
	INCLUDE   = Directive(19) // .include
	SECTION   = Directive(20) // .section
)

var descriptions = [...]string{
	DATA:      "Subsequent items stored in Data segment at next available address",
	TEXT:      "Subsequent items (instructions) stored in Text segment at next available address",
	WORD:      "Store the listed value(s) as 32 bit words on word boundary",
	DWORD:     "Store the listed value(s) as 64 bit double-word on word boundary",
	HALF:      "Store the listed value(s) as 16 bit halfwords on halfword boundary",
	BYTE:      "Store the listed value(s) as 8 bit bytes",
	FLOAT:     "Store the listed value(s) as single precision floating point",
	DOUBLE:    "Store the listed value(s) as double precision floating point",
	ASCII:     "Store the string in the Data segment but do not add null terminator",
	ASCIZ:     "Store the string in the Data segment and add null terminator",
	STRING:    "Alias for .asciz",
	ALIGN:     "Align next data item on specified byte boundary (0=byte, 1=half, 2=word, 3=double)",
	SPACE:     "Reserve the next specified number of bytes in Data segment",
	EXTERN:    "Declare the listed label and byte length to be a global data field",
	GLOBL:     "Declare the listed label(s) as global to enable referencing from other files",
	GLOBAL:    "Declare the listed label(s) as global to enable referencing from other files",
	EQV:       "Substitute second operand for first. First operand is symbol, second operand is expression (like #define)",
	MACRO:     "Begin macro definition.  See .end_macro",
	END_MACRO: "End macro definition.  See .macro",
	INCLUDE:   "Insert the contents of the specified file.  Put filename in quotes.",
	SECTION:   "Allows specifying sections without .text or .data directives. Included for gcc comparability",
}

// Description returns the human readable description of the directive.
func (d Directive) Description() string {
	if d < 0 || int(d) >= len(descriptions) {
		return ""
	}
	return descriptions[d]
}

// Lookup finds the directive for a keyword, ignoring case.
func Lookup(keyword string) (d Directive, ok bool) {
	keyword = strings.ToLower(keyword)
	for each := range All() {
		if each.String() == keyword {
			return each, true
		}
	}
	return
}

// All iterates over every directive in keyword order.
func All() iter.Seq[Directive] {
	return func(yield func(Directive) bool) {
		for d := DATA; d <= SECTION; d++ {
			if !yield(d) {
				return
			}
		}
	}
}

// IsInteger is true for directives storing integer values.
func (d Directive) IsInteger() bool {
	switch d {
	case WORD, DWORD, HALF, BYTE:
		return true
	}
	return false
}

// IsFloat is true for directives storing floating point values.
func (d Directive) IsFloat() bool {
	return d == FLOAT || d == DOUBLE
}

// IsString is true for directives storing quoted strings.
func (d Directive) IsString() bool {
	switch d {
	case ASCII, ASCIZ, STRING:
		return true
	}
	return false
}

// IsData is true for directives whose operands may continue on the
// following lines of the data segment.
func (d Directive) IsData() bool {
	return d.IsInteger() || d.IsFloat() || d.IsString()
}

// Width is the natural byte width of one stored value, or 0 for
// directives that store nothing.
func (d Directive) Width() int {
	switch d {
	case DWORD, DOUBLE:
		return 8
	case WORD, FLOAT:
		return 4
	case HALF:
		return 2
	case BYTE, ASCII, ASCIZ, STRING:
		return 1
	}
	return 0
}
