package symbol

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableAdd(t *testing.T) {
	assert := assert.New(t)

	st := NewTable("a.s", nil)
	assert.NoError(st.Add("main", 0x00400000, false))
	assert.NoError(st.Add("val", 0x10010000, true))

	err := st.Add("main", 0x00400010, false)
	assert.ErrorIs(err, ErrDuplicateSymbol)
	var se *ErrSymbol
	if assert.True(errors.As(err, &se)) {
		assert.Equal("main", se.Name)
	}

	addr, ok := st.Address("main")
	assert.True(ok)
	assert.Equal(uint32(0x00400000), addr, "never overwritten")
	assert.Equal(2, st.Len())

	var zero Table
	assert.NoError(zero.Add("x", 4, true))
	assert.Equal(1, zero.Len())
}

func TestTableRemove(t *testing.T) {
	assert := assert.New(t)

	st := NewTable("a.s", nil)
	for n, name := range []string{"a", "b", "c"} {
		assert.NoError(st.Add(name, uint32(n*4), false))
	}

	sym, ok := st.Remove("a")
	assert.True(ok)
	assert.Equal(Symbol{Name: "a", Address: 0}, sym)

	_, ok = st.Remove("a")
	assert.False(ok)

	addr, ok := st.Address("c")
	assert.True(ok)
	assert.Equal(uint32(8), addr)

	assert.NoError(st.Add("a", 12, false))
	assert.Equal([]string{"b", "c", "a"}, names(st))
}

func names(st *Table) (list []string) {
	for sym := range st.All() {
		list = append(list, sym.Name)
	}
	return
}

func TestTableLocalOrGlobal(t *testing.T) {
	assert := assert.New(t)

	global := NewTable("(global)", nil)
	local := NewTable("a.s", global)

	assert.NoError(global.Add(ENTRY_POINT, 0x00400000, false))
	assert.NoError(local.Add("loop", 0x00400008, false))

	_, ok := local.Address(ENTRY_POINT)
	assert.False(ok)

	addr, ok := local.AddressLocalOrGlobal(ENTRY_POINT)
	assert.True(ok)
	assert.Equal(uint32(0x00400000), addr)

	addr, ok = local.AddressLocalOrGlobal("loop")
	assert.True(ok)
	assert.Equal(uint32(0x00400008), addr)

	_, ok = global.AddressLocalOrGlobal("loop")
	assert.False(ok)
}

func TestTableFixAddress(t *testing.T) {
	assert := assert.New(t)

	st := NewTable("a.s", nil)
	assert.NoError(st.Add("b", 0x10010005, true))
	assert.NoError(st.Add("w1", 0x10010006, true))
	assert.NoError(st.Add("w2", 0x10010006, true))

	assert.Equal(2, st.FixAddress(0x10010006, 0x10010008))
	assert.Equal(0, st.FixAddress(0x10010006, 0x10010008))

	addr, _ := st.Address("w2")
	assert.Equal(uint32(0x10010008), addr)
	addr, _ = st.Address("b")
	assert.Equal(uint32(0x10010005), addr)

	sym, ok := st.SymbolAt(0x10010008)
	assert.True(ok)
	assert.Equal("w1", sym.Name)
	_, ok = st.SymbolAt(0x10010006)
	assert.False(ok)
}

func TestTablePartitions(t *testing.T) {
	assert := assert.New(t)

	st := NewTable("a.s", nil)
	assert.NoError(st.Add("main", 0x00400000, false))
	assert.NoError(st.Add("val", 0x10010000, true))
	assert.NoError(st.Add("loop", 0x00400004, false))

	assert.Len(st.DataSymbols(), 1)
	assert.Len(st.TextSymbols(), 2)
	assert.Equal("loop", st.TextSymbols()[1].Name)

	st.Clear()
	assert.Equal(0, st.Len())
	assert.Empty(slices.Collect(st.All()))
	assert.NoError(st.Add("main", 0, false))
}
