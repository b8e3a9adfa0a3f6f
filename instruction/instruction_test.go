package instruction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvasm/token"
)

var testTokenizer = &token.Tokenizer{IsMnemonic: Default.IsMnemonic}

func tokenize(t *testing.T, line string) token.List {
	tl, err := testTokenizer.Tokenize("test.s", 1, line)
	assert.NoError(t, err, line)
	return tl
}

// assemble matches and encodes a line of one basic instruction.
func assemble(t *testing.T, line string, address uint32, resolve Resolver) (word uint32, err error) {
	tl := tokenize(t, line)
	ins, err := Match(tl, Default.Lookup(tl[0].Text))
	if err != nil {
		return
	}
	bi, ok := ins.(*Basic)
	if !assert.True(t, ok, line) {
		return
	}
	return bi.Assemble(tl[1:], address, resolve)
}

func TestCompileMask(t *testing.T) {
	assert := assert.New(t)

	opMask, opMatch, err := CompileMask("ttttttttttttsssss000fffff0010011")
	assert.NoError(err)
	assert.Equal(uint32(0x0000707f), opMask)
	assert.Equal(uint32(0x00000013), opMatch)

	_, _, err = CompileMask("0000")
	assert.ErrorIs(err, ErrMaskSyntax)

	_, _, err = CompileMask("xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")
	assert.ErrorIs(err, ErrMaskSyntax)
}

func TestScramble(t *testing.T) {
	assert := assert.New(t)

	for _, fm := range []Format{FORMAT_B, FORMAT_J} {
		for _, offset := range []int32{0, 2, -2, 8, -8, 2046, -2048, 4094, -4096} {
			assert.Equal(offset, fm.unscramble(fm.scramble(offset)), "%v %v", fm, offset)
		}
	}

	for _, offset := range []int32{1 << 19, -1 << 20, (1 << 20) - 2} {
		assert.Equal(offset, FORMAT_J.unscramble(FORMAT_J.scramble(offset)))
	}
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	symbols := map[string]uint32{
		"loop": 0x00400008,
		"back": 0x003ffffc,
	}
	resolve := func(name string) (address uint32, ok bool) {
		address, ok = symbols[name]
		return
	}

	table := [](struct {
		line string
		word uint32
	}){
		{"addi x1,x0,5", 0x00500093},
		{"add x1,x2,x3", 0x003100b3},
		{"auipc x2,0x0FC10", 0x0fc10117},
		{"sw x1,-4(x2)", 0xfe112e23},
		{"lw t1,-100(t2)", 0xf9c3a303},
		{"lui t0,0x12345", 0x123452b7},
		{"beq x1,x2,loop", 0x00208463},
		{"beq ra,sp,8", 0x00208463},
		{"bne t0,zero,-8", 0xfe029ce3},
		{"jal ra,back", 0xffdff0ef},
		{"jal x0,2048", 0x0010006f},
		{"csrrw t1,fcsr,x0", 0x00301373},
		{"fmadd.s f1,f2,f3,f4", 0x203170c3},
		{"ecall", 0x00000073},
		{"ebreak", 0x00100073},
	}

	for _, entry := range table {
		word, err := assemble(t, entry.line, 0x00400000, resolve)
		assert.NoError(err, entry.line)
		assert.Equal(entry.word, word, "%s: %08x", entry.line, word)
	}
}

func TestEncodeRange(t *testing.T) {
	assert := assert.New(t)

	resolve := func(name string) (uint32, bool) {
		return 0x00401000, name == "far"
	}

	table := [](struct {
		line string
		err  error
	}){
		{"beq t1,t2,far", ErrOperandRange},
		{"beq t1,t2,3", ErrOperandRange},
		{"csrrw t0,4096,t1", ErrOperandRange},
		{"beq t1,t2,nowhere", ErrUndefinedSymbol},
		{"jal ra,far", nil},
	}

	for _, entry := range table {
		_, err := assemble(t, entry.line, 0x00400000, resolve)
		if entry.err == nil {
			assert.NoError(err, entry.line)
			continue
		}
		assert.ErrorIs(err, entry.err, entry.line)
	}

	_, err := assemble(t, "beq t1,t2,far", 0x00400000, resolve)
	var eo *ErrOperand
	if assert.True(errors.As(err, &eo)) {
		assert.Equal("far", eo.Text)
		assert.Equal(11, eo.Column)
	}
}

func TestMatch(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line    string
		example string
		err     error
	}){
		{"li t1,5", "li t1,-100", nil},
		{"li t1,0x12345", "li t1,1000000000", nil},
		{"lw t1,-100(t2)", "lw t1,-100(t2)", nil},
		{"lw t1,value", "lw t1,label", nil},
		{"lw t1,(t2)", "lw t1,(t2)", nil},
		{"la a0,100", "la t1,label", nil},
		{"csrr t1,3", "csrr t1,fcsr", nil},
		{"add t1,t2,5", "", ErrOperandType},
		{"addi t1,t2,3000", "", ErrOperandType},
		{"slli t1,t2,32", "", ErrOperandType},
		{"add t1,t2", "", ErrOperandFormat},
	}

	for _, entry := range table {
		tl := tokenize(t, entry.line)
		ins, err := Match(tl, Default.Lookup(tl[0].Text))
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.line)
			continue
		}
		if assert.NoError(err, entry.line) {
			assert.Equal(entry.example, ins.Example(), entry.line)
		}
	}

	tl := tokenize(t, "add t1,t2,5")
	_, err := Match(tl, Default.Lookup("add"))
	var eo *ErrOperand
	if assert.True(errors.As(err, &eo)) {
		assert.Equal("5", eo.Text)
		assert.Equal(11, eo.Column)
		assert.Equal("add t1,t2,t3", eo.Example)
	}

	tl = tokenize(t, "frob t1")
	_, err = Match(tl, Default.Lookup("frob"))
	assert.ErrorIs(err, ErrInstructionUnknown)
}

func TestHighLow(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value     int32
		high, low int32
	}){
		{0, 0, 0},
		{0x12345fff, 0x12346, -1},
		{0x800, 1, -2048},
		{0x7ff, 0, 2047},
		{-1, 0, -1},
		{0x0fc0fffc, 0x0fc10, -4},
	}

	for _, entry := range table {
		assert.Equal(entry.high, High(entry.value), "%x", entry.value)
		assert.Equal(entry.low, Low(entry.value), "%x", entry.value)
		assert.Equal(entry.value, High(entry.value)<<12+Low(entry.value), "%x", entry.value)
	}
}

func TestExpand(t *testing.T) {
	assert := assert.New(t)

	symbols := map[string]uint32{
		"label": 0x10010000,
		"value": 0x1000fffc,
		"loop":  0x00400000,
	}
	resolve := func(name string) (address uint32, ok bool) {
		address, ok = symbols[name]
		return
	}

	table := [](struct {
		line  string
		lines []string
	}){
		{"la t1,label", []string{"auipc t1, 64528", "addi t1, t1, 0"}},
		{"sw ra,value,t2", []string{"auipc t2, 64528", "sw ra, -4(t2)"}},
		{"li t1,1000000000", []string{"lui t1, 244141", "addi t1, t1, -1536"}},
		{"li a0,-7", []string{"addi a0, x0, -7"}},
		{"j loop", []string{"jal x0, loop"}},
		{"mv a0,a1", []string{"add a0, x0, a1"}},
		{"lw t0,(sp)", []string{"lw t0, 0(sp)"}},
		{"bgt t0,t1,loop", []string{"blt t1, t0, loop"}},
		{"jalr ra,8(t0)", []string{"jalr ra, t0, 8"}},
		{"call label", []string{"auipc x1, 64528", "jalr x1, x1, 0"}},
		{"nop", []string{"addi x0, x0, 0"}},
	}

	for _, entry := range table {
		tl := tokenize(t, entry.line)
		ins, err := Match(tl, Default.Lookup(tl[0].Text))
		if !assert.NoError(err, entry.line) {
			continue
		}
		ei, ok := ins.(*Extended)
		if !assert.True(ok, entry.line) {
			continue
		}
		lines, err := ei.Expand(tl, 0x00400000, resolve)
		assert.NoError(err, entry.line)
		assert.Equal(entry.lines, lines, entry.line)
		assert.Equal(4*len(entry.lines), ei.Size(), entry.line)
	}

	tl := tokenize(t, "la t1,nowhere")
	ins, err := Match(tl, Default.Lookup("la"))
	assert.NoError(err)
	_, err = ins.(*Extended).Expand(tl, 0x00400000, resolve)
	assert.ErrorIs(err, ErrUndefinedSymbol)
}

// Every translation template of the default set must assemble.
func TestDefaultExtended(t *testing.T) {
	assert := assert.New(t)

	resolve := func(name string) (uint32, bool) {
		return 0x00400010, true
	}

	for ins := range Default.All() {
		ei, ok := ins.(*Extended)
		if !ok {
			continue
		}
		tl := tokenize(t, ei.Example())
		lines, err := ei.Expand(tl, 0x00400000, resolve)
		if !assert.NoError(err, ei.Example()) {
			continue
		}
		for n, line := range lines {
			_, err := assemble(t, line, 0x00400000+uint32(4*n), resolve)
			assert.NoError(err, "%v: %v", ei.Example(), line)
		}
	}
}

func TestSet(t *testing.T) {
	assert := assert.New(t)

	assert.True(Default.IsMnemonic("ADD"))
	assert.True(Default.IsMnemonic("fadd.s"))
	assert.False(Default.IsMnemonic("frob"))
	assert.Len(Default.Lookup("li"), 2)
	assert.Len(Default.WithPrefix("fcvt."), 4)

	for bi := range Default.Basics() {
		assert.Equal(4, bi.Size())
	}

	// The most specific mask decodes first.
	hint := NewBasic("hint", FORMAT_I, "000000000000 00000 000 00000 0010011", "hint")
	addi := NewBasic("addi t1,t2,-100", FORMAT_I, "tttttttttttt sssss 000 fffff 0010011", "addi")
	set := NewSet(addi, hint)

	bi, ok := set.Decode(0x00000013)
	assert.True(ok)
	assert.Equal(hint, bi)

	bi, ok = set.Decode(0x00500093)
	assert.True(ok)
	assert.Equal(addi, bi)

	_, ok = set.Decode(0xffffffff)
	assert.False(ok)

	assert.Panics(func() {
		NewSet(addi, NewBasic("other t1,t2,-100", FORMAT_I, "tttttttttttt sssss 000 fffff 0010011", "other"))
	})
	assert.Panics(func() {
		NewBasic("bad", FORMAT_I, "0101", "bad")
	})
}

// Every basic instruction decodes back to itself.
func TestDecodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	resolve := func(name string) (uint32, bool) {
		return 0x00400010, true
	}

	for bi := range Default.Basics() {
		word, err := assemble(t, bi.Example(), 0x00400000, resolve)
		if !assert.NoError(err, bi.Example()) {
			continue
		}
		decoded, ok := Default.Decode(word)
		if !assert.True(ok, bi.Example()) {
			continue
		}
		assert.Equal(bi, decoded, bi.Example())

		again, err := decoded.Encode(decoded.DecodeOperands(word))
		assert.NoError(err, bi.Example())
		assert.Equal(word, again, bi.Example())
	}

	bi, ok := Default.Decode(0xfe112e23)
	if assert.True(ok) {
		assert.Equal("sw", bi.Mnemonic())
		assert.Equal([]int32{1, -4, 2}, bi.DecodeOperands(0xfe112e23))
	}

	bi, ok = Default.Decode(0xfe029ce3)
	if assert.True(ok) {
		assert.Equal("bne", bi.Mnemonic())
		assert.Equal([]int32{5, 0, -8}, bi.DecodeOperands(0xfe029ce3))
	}
}

func FuzzDecode(f *testing.F) {
	for _, word := range []uint32{0x00500093, 0x003100b3, 0xfe112e23, 0xffdff0ef, 0xfe029ce3, 0x203170c3} {
		f.Add(word)
	}

	f.Fuzz(func(t *testing.T, word uint32) {
		bi, ok := Default.Decode(word)
		if !ok {
			return
		}
		again, err := bi.Encode(bi.DecodeOperands(word))
		assert.NoError(t, err, bi.Example())
		assert.Equal(t, word, again, bi.Example())
	})
}
