// Package token splits assembly source lines into typed lexical units.
package token

import (
	"strconv"
	"strings"
)

// Type is the lexical class of a token.
type Type int

//go:generate go tool stringer -type=Type
const (
	COMMENT          = Type(0)
	DIRECTIVE        = Type(1)
	OPERATOR         = Type(2)
	REGISTER_NAME    = Type(3)
	FP_REGISTER_NAME = Type(4)
	CSR_NAME         = Type(5)
	IDENTIFIER       = Type(6)
	LEFT_PAREN       = Type(7)
	RIGHT_PAREN      = Type(8)
	INTEGER_5        = Type(9)
	INTEGER_12       = Type(10)
	INTEGER_20       = Type(11)
	INTEGER_32       = Type(12)
	INTEGER_64       = Type(13)
	REAL_NUMBER      = Type(14)
	QUOTED_STRING    = Type(15)
	PLUS             = Type(16)
	MINUS            = Type(17)
	COLON            = Type(18)
	MACRO_PARAMETER  = Type(19)
)

// IsInteger is true for the integer literal classes.
func (tt Type) IsInteger() bool {
	return tt >= INTEGER_5 && tt <= INTEGER_64
}

// IsNumber is true for integer and real literals.
func (tt Type) IsNumber() bool {
	return tt.IsInteger() || tt == REAL_NUMBER
}

// FitsIn reports whether a token of this type may stand in an operand
// slot of type slot.
func (tt Type) FitsIn(slot Type) bool {
	switch {
	case tt == slot:
		return true
	case slot.IsInteger():
		// Integer classes are ordered by width.
		return tt.IsInteger() && tt <= slot
	case slot == IDENTIFIER:
		// Branch targets may be given as literal offsets.
		return tt.IsInteger() && tt <= INTEGER_32
	case slot == CSR_NAME:
		return tt.IsInteger() && tt <= INTEGER_20
	}
	return false
}

// IntegerType returns the narrowest integer class holding value.
func IntegerType(value int64) Type {
	switch {
	case value >= 0 && value <= 31:
		return INTEGER_5
	case value >= -2048 && value <= 2047:
		return INTEGER_12
	case value >= -0x80000 && value <= 0xfffff:
		return INTEGER_20
	case value >= -0x80000000 && value <= 0xffffffff:
		return INTEGER_32
	}
	return INTEGER_64
}

// Token is a single lexical unit of a source line.
type Token struct {
	Type   Type
	Text   string
	File   string
	Line   int
	Column int // 1-based byte column of the first character.
}

// String returns the source text of the token.
func (tok Token) String() string {
	return tok.Text
}

// Int returns the value of an integer literal token.
func (tok Token) Int() (value int64, ok bool) {
	if !tok.Type.IsInteger() {
		return
	}
	return ParseInt(tok.Text)
}

// Float returns the value of a numeric literal token.
func (tok Token) Float() (value float64, ok bool) {
	switch {
	case tok.Type.IsInteger():
		var v int64
		v, ok = tok.Int()
		value = float64(v)
	case tok.Type == REAL_NUMBER:
		var err error
		value, err = strconv.ParseFloat(tok.Text, 64)
		ok = err == nil
	}
	return
}

// ParseInt parses an integer literal, including character literals.
// Values beyond the int64 range but within uint64 wrap.
func ParseInt(text string) (value int64, ok bool) {
	if len(text) >= 3 && text[0] == '\'' && text[len(text)-1] == '\'' {
		str, err := Unescape(text[1 : len(text)-1])
		if err != nil {
			return
		}
		runes := []rune(str)
		if len(runes) != 1 {
			return
		}
		return int64(runes[0]), true
	}

	value, err := strconv.ParseInt(text, 0, 64)
	if err == nil {
		return value, true
	}

	negative := strings.HasPrefix(text, "-")
	u64, err := strconv.ParseUint(strings.TrimLeft(text, "+-"), 0, 64)
	if err != nil {
		return 0, false
	}
	value = int64(u64)
	if negative {
		value = -value
	}
	return value, true
}

// List is the token sequence of one source line.
type List []Token

// String joins the token texts with single spaces.
func (tl List) String() string {
	words := make([]string, len(tl))
	for n, tok := range tl {
		words[n] = tok.Text
	}
	return strings.Join(words, " ")
}

// WithoutComment returns the list without a trailing comment token.
func (tl List) WithoutComment() List {
	if len(tl) > 0 && tl[len(tl)-1].Type == COMMENT {
		return tl[:len(tl)-1]
	}
	return tl
}
