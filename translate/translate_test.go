package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("symbol main", From("symbol %v", "main"))
	assert.Equal("0x00400000", From("0x%08x", 0x400000))
}

func TestNewPrinter(t *testing.T) {
	assert := assert.New(t)

	p := NewPrinter()
	assert.NotNil(p)
	assert.Equal("line 12", p.Sprintf("line %d", 12))
}
