package instruction

import (
	"iter"
	"math/bits"
	"slices"
	"strings"
)

// decodeGroup holds the basic instructions sharing one opcode mask.
type decodeGroup struct {
	mask  uint32
	match map[uint32]*Basic
}

// Set is an instruction set, indexed by mnemonic and by opcode.
type Set struct {
	instructions []Instruction
	mnemonics    map[string][]Instruction
	groups       []decodeGroup
}

// NewSet indexes the instructions. Candidates of a mnemonic keep their
// listed order. It panics when two basic instructions share an encoding.
func NewSet(instructions ...Instruction) (set *Set) {
	set = &Set{
		instructions: instructions,
		mnemonics:    map[string][]Instruction{},
	}

	byMask := map[uint32]map[uint32]*Basic{}
	for _, ins := range instructions {
		set.mnemonics[ins.Mnemonic()] = append(set.mnemonics[ins.Mnemonic()], ins)

		bi, ok := ins.(*Basic)
		if !ok {
			continue
		}
		group, ok := byMask[bi.OpcodeMask]
		if !ok {
			group = map[uint32]*Basic{}
			byMask[bi.OpcodeMask] = group
		}
		if other, ok := group[bi.OpcodeMatch]; ok {
			panic("instruction: " + bi.Example() + " has the encoding of " + other.Example())
		}
		group[bi.OpcodeMatch] = bi
	}

	for mask, match := range byMask {
		set.groups = append(set.groups, decodeGroup{mask: mask, match: match})
	}

	// Most specific masks first.
	slices.SortFunc(set.groups, func(a, b decodeGroup) int {
		ac, bc := bits.OnesCount32(a.mask), bits.OnesCount32(b.mask)
		if ac != bc {
			return bc - ac
		}
		switch {
		case a.mask < b.mask:
			return -1
		case a.mask > b.mask:
			return 1
		}
		return 0
	})

	return
}

// All returns the instructions in listed order.
func (set *Set) All() iter.Seq[Instruction] {
	return slices.Values(set.instructions)
}

// Basics returns the basic instructions in listed order.
func (set *Set) Basics() iter.Seq[*Basic] {
	return func(yield func(*Basic) bool) {
		for _, ins := range set.instructions {
			if bi, ok := ins.(*Basic); ok {
				if !yield(bi) {
					return
				}
			}
		}
	}
}

// Lookup returns the candidates of a mnemonic, case-insensitive.
func (set *Set) Lookup(mnemonic string) []Instruction {
	return set.mnemonics[strings.ToLower(mnemonic)]
}

// IsMnemonic reports whether word names an instruction of the set.
func (set *Set) IsMnemonic(word string) bool {
	return len(set.Lookup(word)) > 0
}

// WithPrefix returns the instructions whose mnemonic starts with prefix.
func (set *Set) WithPrefix(prefix string) (list []Instruction) {
	prefix = strings.ToLower(prefix)
	for _, ins := range set.instructions {
		if strings.HasPrefix(ins.Mnemonic(), prefix) {
			list = append(list, ins)
		}
	}
	return
}

// Decode finds the basic instruction encoded by word, preferring the
// instruction with the most literal opcode bits.
func (set *Set) Decode(word uint32) (bi *Basic, ok bool) {
	for _, group := range set.groups {
		bi, ok = group.match[word&group.mask]
		if ok {
			return
		}
	}
	return
}
