// Package memory is the byte-addressed store that assembled programs are
// written into.
package memory

import (
	"iter"
	"maps"
	"math"
	"slices"
)

const (
	PAGE_BITS = 12
	PAGE_SIZE = 1 << PAGE_BITS
	PAGE_MASK = PAGE_SIZE - 1
)

type page [PAGE_SIZE]byte

// Memory is a sparse little-endian store over a Layout. Unwritten memory
// reads as zero.
type Memory struct {
	Layout Layout
	pages  map[uint32]*page
}

// New returns an empty memory with the given layout.
func New(layout Layout) *Memory {
	return &Memory{
		Layout: layout,
		pages:  map[uint32]*page{},
	}
}

// Reset discards every written byte.
func (mem *Memory) Reset() {
	clear(mem.pages)
}

// check verifies an access of length bytes lies inside one segment.
func (mem *Memory) check(address uint32, length int) (seg Segment, err error) {
	switch length {
	case 1, 2, 4, 8:
	default:
		err = &ErrAddress{Address: address, Err: ErrLength}
		return
	}

	last := address + uint32(length-1)
	seg = mem.Layout.Segment(address)
	if seg == SEGMENT_NONE || last < address || mem.Layout.Segment(last) != seg {
		err = &ErrAddress{Address: address, Err: ErrOutOfRange}
		return
	}

	return
}

func (mem *Memory) setByte(address uint32, value byte) {
	if mem.pages == nil {
		mem.pages = map[uint32]*page{}
	}
	pg, ok := mem.pages[address>>PAGE_BITS]
	if !ok {
		pg = &page{}
		mem.pages[address>>PAGE_BITS] = pg
	}
	pg[address&PAGE_MASK] = value
}

func (mem *Memory) getByte(address uint32) byte {
	pg, ok := mem.pages[address>>PAGE_BITS]
	if !ok {
		return 0
	}
	return pg[address&PAGE_MASK]
}

// Set stores the low length bytes of value at address, in any segment.
func (mem *Memory) Set(address uint32, value uint64, length int) (err error) {
	_, err = mem.check(address, length)
	if err != nil {
		return
	}

	for n := range length {
		mem.setByte(address+uint32(n), byte(value>>(8*n)))
	}

	return
}

// SetByte stores one byte.
func (mem *Memory) SetByte(address uint32, value byte) error {
	return mem.Set(address, uint64(value), 1)
}

// SetDouble stores the IEEE-754 bits of value.
func (mem *Memory) SetDouble(address uint32, value float64) error {
	return mem.Set(address, math.Float64bits(value), 8)
}

// SetWord stores an instruction word. The address must be word aligned
// and inside a text segment.
func (mem *Memory) SetWord(address uint32, word uint32) (err error) {
	if address&3 != 0 {
		err = &ErrAddress{Address: address, Err: ErrMisaligned}
		return
	}

	seg, err := mem.check(address, 4)
	if err != nil {
		return
	}
	if !seg.IsText() {
		err = &ErrAddress{Address: address, Err: ErrOutOfRange}
		return
	}

	return mem.Set(address, uint64(word), 4)
}

// Get loads length bytes at address.
func (mem *Memory) Get(address uint32, length int) (value uint64, err error) {
	_, err = mem.check(address, length)
	if err != nil {
		return
	}

	for n := range length {
		value |= uint64(mem.getByte(address+uint32(n))) << (8 * n)
	}

	return
}

// GetWord loads a 32-bit word.
func (mem *Memory) GetWord(address uint32) (word uint32, err error) {
	value, err := mem.Get(address, 4)
	word = uint32(value)
	return
}

// Words returns, in address order, every aligned word of segment seg
// that shares a page with a written byte.
func (mem *Memory) Words(seg Segment) iter.Seq2[uint32, uint32] {
	return func(yield func(address uint32, word uint32) bool) {
		for _, index := range slices.Sorted(maps.Keys(mem.pages)) {
			pg := mem.pages[index]
			base := index << PAGE_BITS
			for offset := uint32(0); offset < PAGE_SIZE; offset += 4 {
				address := base + offset
				if mem.Layout.Segment(address) != seg {
					continue
				}
				word := uint32(pg[offset]) | uint32(pg[offset+1])<<8 | uint32(pg[offset+2])<<16 | uint32(pg[offset+3])<<24
				if !yield(address, word) {
					return
				}
			}
		}
	}
}
