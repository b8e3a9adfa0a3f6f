package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func types(tl List) (tts []Type) {
	for _, tok := range tl {
		tts = append(tts, tok.Type)
	}
	return
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	tk := &Tokenizer{IsMnemonic: func(word string) bool {
		return word == "add" || word == "lw" || word == "j"
	}}

	table := [](struct {
		line  string
		types []Type
	}){
		{"", nil},
		{"   # just a comment", []Type{COMMENT}},
		{"main: add t1, t2, x3", []Type{IDENTIFIER, COLON, OPERATOR, REGISTER_NAME, REGISTER_NAME, REGISTER_NAME}},
		{"lw a0, -100(sp)", []Type{OPERATOR, REGISTER_NAME, INTEGER_12, LEFT_PAREN, REGISTER_NAME, RIGHT_PAREN}},
		{".word 1, 2048, 0x100000, 0xffffffff, 0x100000000", []Type{DIRECTIVE, INTEGER_5, INTEGER_20, INTEGER_32, INTEGER_32, INTEGER_64}},
		{".float 1.5, -2e-3", []Type{DIRECTIVE, REAL_NUMBER, REAL_NUMBER}},
		{".asciz \"a \\\"b\\\"\" # tail", []Type{DIRECTIVE, QUOTED_STRING, COMMENT}},
		{".word label+4", []Type{DIRECTIVE, IDENTIFIER, PLUS, INTEGER_5}},
		{".word 1 -2", []Type{DIRECTIVE, INTEGER_5, INTEGER_12}},
		{".byte 'a', '\\n'", []Type{DIRECTIVE, INTEGER_12, INTEGER_5}},
		{".macro swap(%a, %b)", []Type{DIRECTIVE, IDENTIFIER, LEFT_PAREN, MACRO_PARAMETER, MACRO_PARAMETER, RIGHT_PAREN}},
		{".macro old $x", []Type{DIRECTIVE, IDENTIFIER, MACRO_PARAMETER}},
		{"j: j j", []Type{IDENTIFIER, COLON, OPERATOR, OPERATOR}},
		{"fadd.s ft0, fa1, f2", []Type{IDENTIFIER, FP_REGISTER_NAME, FP_REGISTER_NAME, FP_REGISTER_NAME}},
		{"csrrw t0, fcsr, t1", []Type{IDENTIFIER, REGISTER_NAME, CSR_NAME, REGISTER_NAME}},
		{".L1: .gnu_attribute 4", []Type{IDENTIFIER, COLON, IDENTIFIER, INTEGER_5}},
		{".word 7 : 3", []Type{DIRECTIVE, INTEGER_5, COLON, INTEGER_5}},
	}

	for _, entry := range table {
		tl, err := tk.Tokenize("test.s", 1, entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.types, types(tl), entry.line)
	}
}

func TestTokenizePosition(t *testing.T) {
	assert := assert.New(t)

	tk := &Tokenizer{}
	tl, err := tk.Tokenize("pos.s", 7, "  loop: beq t0, zero, loop")
	assert.NoError(err)
	if assert.Len(tl, 6) {
		assert.Equal(Token{Type: IDENTIFIER, Text: "loop", File: "pos.s", Line: 7, Column: 3}, tl[0])
		assert.Equal(23, tl[5].Column)
		assert.Equal("loop", tl[5].Text)
	}
	assert.Equal("loop : beq t0 zero loop", tl.String())
}

func TestTokenizeErrors(t *testing.T) {
	assert := assert.New(t)

	tk := &Tokenizer{}

	table := [](struct {
		line   string
		column int
		err    error
	}){
		{".ascii \"open", 8, ErrUnterminatedString},
		{"add t0, t1 @ t2", 12, ErrInvalidCharacter},
		{".word 12abc", 7, ErrInvalidNumber},
		{".byte 'ab'", 7, ErrInvalidNumber},
	}

	for _, entry := range table {
		_, err := tk.Tokenize("bad.s", 1, entry.line)
		assert.True(errors.Is(err, entry.err), entry.line)
		var et *ErrToken
		if assert.True(errors.As(err, &et), entry.line) {
			assert.Equal(entry.column, et.Column, entry.line)
		}
	}
}

func TestWithoutComment(t *testing.T) {
	assert := assert.New(t)

	tk := &Tokenizer{}
	tl, _ := tk.Tokenize("", 1, "nop # comment")
	assert.Len(tl, 2)
	assert.Len(tl.WithoutComment(), 1)
	assert.Len(tl.WithoutComment().WithoutComment(), 1)
}

func TestParseInt(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		value int64
		ok    bool
	}){
		{"10", 10, true},
		{"-10", -10, true},
		{"0x10", 16, true},
		{"0b101", 5, true},
		{"'A'", 65, true},
		{"'\\t'", 9, true},
		{"'\\u00e9'", 0xe9, true},
		{"0xffffffffffffffff", -1, true},
		{"label", 0, false},
		{"1.5", 0, false},
	}

	for _, entry := range table {
		value, ok := ParseInt(entry.text)
		assert.Equal(entry.ok, ok, entry.text)
		assert.Equal(entry.value, value, entry.text)
	}
}

func TestTypeFitsIn(t *testing.T) {
	assert := assert.New(t)

	assert.True(INTEGER_5.FitsIn(INTEGER_12))
	assert.True(INTEGER_12.FitsIn(INTEGER_32))
	assert.False(INTEGER_20.FitsIn(INTEGER_12))
	assert.True(INTEGER_12.FitsIn(IDENTIFIER))
	assert.False(INTEGER_64.FitsIn(IDENTIFIER))
	assert.True(INTEGER_12.FitsIn(CSR_NAME))
	assert.False(REGISTER_NAME.FitsIn(FP_REGISTER_NAME))
	assert.False(IDENTIFIER.FitsIn(INTEGER_32))
	assert.True(REGISTER_NAME.FitsIn(REGISTER_NAME))
}

func TestIntegerType(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(INTEGER_5, IntegerType(0))
	assert.Equal(INTEGER_5, IntegerType(31))
	assert.Equal(INTEGER_12, IntegerType(32))
	assert.Equal(INTEGER_12, IntegerType(-1))
	assert.Equal(INTEGER_12, IntegerType(-2048))
	assert.Equal(INTEGER_20, IntegerType(2048))
	assert.Equal(INTEGER_20, IntegerType(0xfffff))
	assert.Equal(INTEGER_32, IntegerType(0x100000))
	assert.Equal(INTEGER_32, IntegerType(-0x80000000))
	assert.Equal(INTEGER_64, IntegerType(0x100000000))
}

func TestUnescape(t *testing.T) {
	assert := assert.New(t)

	str, err := Unescape(`a\n\t\r\\\"\'\b\f\0`)
	assert.NoError(err)
	assert.Equal("a\n\t\r\\\"'\b\f\x00", str)

	str, err = Unescape(`Aé`)
	assert.NoError(err)
	assert.Equal("Aé", str)

	for _, bad := range []string{`\q`, `\u12`, `\u12zz`, `tail\`} {
		_, err = Unescape(bad)
		assert.ErrorIs(err, ErrEscape, bad)
	}
}

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	n, ok := Register("zero")
	assert.True(ok)
	assert.Equal(0, n)
	n, _ = Register("fp")
	assert.Equal(8, n)
	n, _ = Register("t6")
	assert.Equal(31, n)
	n, _ = Register("x17")
	assert.Equal(17, n)
	_, ok = Register("x32")
	assert.False(ok)

	n, _ = FPRegister("fa0")
	assert.Equal(10, n)
	n, _ = FPRegister("f31")
	assert.Equal(31, n)

	n, _ = CSR("fcsr")
	assert.Equal(3, n)
}
