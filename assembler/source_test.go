package assembler

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Include = fstest.MapFS{
		"defs.s": &fstest.MapFile{Data: []byte(".eqv SIZE 16\n.include \"more.s\"\n")},
		"more.s": &fstest.MapFile{Data: []byte("# nothing here\n")},
		"loop.s": &fstest.MapFile{Data: []byte(".include \"loop.s\"\n")},
	}

	src, err := asm.Parse("main.s", strings.NewReader(strings.Join([]string{
		".include \"defs.s\"",
		"addi t0, zero, SIZE # size",
		"li t1, $(SIZE << 2)",
	}, "\n")))
	if !assert.NoError(err) {
		return
	}
	assert.Equal(0, len(src.Errors))

	table := [](struct {
		file   string
		number int
		text   string
	}){
		{"main.s", 1, ".include \"defs.s\""},
		{"defs.s", 1, ".eqv SIZE 16"},
		{"defs.s", 2, ".include \"more.s\""},
		{"more.s", 1, "# nothing here"},
		{"main.s", 2, "addi t0, zero, 16 # size"},
		{"main.s", 3, "li t1, 64"},
	}

	if assert.Equal(len(table), len(src.Lines)) {
		for n, entry := range table {
			line := src.Lines[n]
			assert.Equal(entry.file, line.File, entry.text)
			assert.Equal(entry.number, line.Number, entry.text)
			assert.Equal(entry.text, line.Text, entry.text)
			assert.NotNil(line.Tokens, entry.text)
		}
	}

	src, err = asm.Parse("bad.s", strings.NewReader(".include \"loop.s\"\nli t0, \"open\n"))
	assert.NoError(err)
	if assert.Equal(2, len(src.Errors)) {
		assert.True(errors.Is(src.Errors[0], ErrInclude))
		assert.Equal("loop.s", src.Errors[0].File)
		assert.Equal(2, src.Errors[1].Line)
		assert.Equal(8, src.Errors[1].Column)
	}
}

func TestEvaluate(t *testing.T) {
	assert := assert.New(t)

	equates := map[string]string{
		"BASE": "0x100",
		"REG":  "t0",
	}

	table := [](struct {
		line string
		text string
		err  error
	}){
		{"addi t0, t0, 1", "addi t0, t0, 1", nil},
		{"addi t0, t0, $(BASE + 4)", "addi t0, t0, 260", nil},
		{"li t0, $(1 << 12) # $(2*3)", "li t0, 4096 # 6", nil},
		{"li t0, $(REG)", "li t0, $(REG)", ErrExpression},
		{"li t0, $(1/0)", "li t0, $(1/0)", ErrExpression},
	}

	for _, entry := range table {
		text, err := evaluate(entry.line, equates)
		assert.Equal(entry.text, text, entry.line)
		if entry.err == nil {
			assert.NoError(err, entry.line)
		} else {
			assert.True(errors.Is(err, entry.err), entry.line)
		}
	}
}
