// Package instruction describes the basic and extended (pseudo)
// instructions, their encodings and their operand formats.
package instruction

import (
	"strings"

	"github.com/ezrec/rvasm/token"
)

// Instruction is either a *Basic or an *Extended instruction.
type Instruction interface {
	Mnemonic() string
	Example() string
	Description() string
	Operands() token.List // Operand format, from the example.
	Size() int            // Encoded length in bytes.

	instruction()
}

var exampleTokenizer = &token.Tokenizer{}

// info holds what every instruction has.
type info struct {
	mnemonic    string
	example     string
	description string
	operands    token.List
}

func newInfo(example, description string) info {
	tl, err := exampleTokenizer.Tokenize("", 0, example)
	if err != nil || len(tl) == 0 {
		panic("instruction: bad example format: " + example)
	}

	return info{
		mnemonic:    strings.ToLower(tl[0].Text),
		example:     example,
		description: description,
		operands:    tl[1:],
	}
}

func (in *info) Mnemonic() string     { return in.mnemonic }
func (in *info) Example() string      { return in.example }
func (in *info) Description() string  { return in.description }
func (in *info) Operands() token.List { return in.operands }
func (in *info) instruction()         {}

// Basic is an instruction with a fixed 32-bit encoding.
type Basic struct {
	info
	Format      Format
	Mask        string // 32 characters over {0,1,f,s,t,q,p}
	OpcodeMask  uint32 // 1 where Mask has a literal bit.
	OpcodeMatch uint32 // The literal bits of Mask.
}

// NewBasic creates a basic instruction. mask may contain blanks for
// readability; it panics on a malformed mask.
func NewBasic(example string, format Format, mask string, description string) (bi *Basic) {
	mask = strings.ReplaceAll(mask, " ", "")

	opMask, opMatch, err := CompileMask(mask)
	if err != nil {
		panic("instruction: " + example + ": " + err.Error())
	}

	bi = &Basic{
		info:        newInfo(example, description),
		Format:      format,
		Mask:        mask,
		OpcodeMask:  opMask,
		OpcodeMatch: opMatch,
	}

	return
}

// Size of every basic instruction.
func (bi *Basic) Size() int {
	return 4
}

// Extended is a pseudo-instruction expanding to basic instructions.
type Extended struct {
	info
	Templates []string
}

// NewExtended creates a pseudo-instruction from its translation templates.
func NewExtended(example string, description string, templates ...string) (ei *Extended) {
	if len(templates) == 0 {
		panic("instruction: no templates for " + example)
	}

	ei = &Extended{
		info:      newInfo(example, description),
		Templates: templates,
	}

	return
}

// Size is four bytes per template line.
func (ei *Extended) Size() int {
	return 4 * len(ei.Templates)
}
