package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvasm/assembler"
	"github.com/ezrec/rvasm/diag"
	"github.com/ezrec/rvasm/memory"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Decode(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(Default(), cfg)
	assert.Equal(diag.DEFAULT_LIMIT, cfg.Assembler.ErrorLimit)

	cfg, err = Decode(strings.NewReader(strings.Join([]string{
		"[assembler]",
		"error_limit = 10",
		"basic_only = true",
		"start_at_main = true",
		"",
		"[assembler.equates]",
		"SIZE = \"16\"",
		"",
		"[memory]",
		"layout = \"compact-text\"",
		"data_base = 0x2100",
	}, "\n")))
	if !assert.NoError(err) {
		return
	}

	assert.Equal(10, cfg.Assembler.ErrorLimit)
	assert.True(cfg.Assembler.BasicOnly)
	assert.True(cfg.Assembler.StartAtMain)
	assert.False(cfg.Assembler.WarningsAreErrors)
	assert.Equal(map[string]string{"SIZE": "16"}, cfg.Assembler.Equates)

	expected := memory.CompactTextLayout
	expected.DataBase = 0x2100
	assert.Equal(expected, cfg.Memory.Layout)

	asm := &assembler.Assembler{}
	cfg.Apply(asm)
	assert.True(asm.BasicOnly)
	assert.Equal(expected, asm.Layout)
}

func TestDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		err  error
	}){
		{"layout", "[memory]\nlayout = \"huge\"\n", ErrLayoutName},
		{"key", "[assembler]\nfast = true\n", ErrUnknownKey},
		{"invalid", "[memory]\ntext_base = 0x20000000\n", memory.ErrLayout},
	}

	for _, entry := range table {
		_, err := Decode(strings.NewReader(entry.text))
		assert.True(errors.Is(err, entry.err), entry.name)
	}

	_, err := Decode(strings.NewReader("[assembler\n"))
	assert.Error(err)

	_, err = Load("/nonexistent/rvasm.toml")
	assert.Error(err)
}
