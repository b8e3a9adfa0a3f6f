package memory

import (
	"maps"
	"slices"
)

// Segment classifies an address of a Layout.
type Segment int

//go:generate go tool stringer -linecomment -type=Segment
const (
	SEGMENT_NONE  = Segment(0) // none
	SEGMENT_TEXT  = Segment(1) // text
	SEGMENT_DATA  = Segment(2) // data
	SEGMENT_KTEXT = Segment(3) // ktext
	SEGMENT_KDATA = Segment(4) // kdata
)

// IsText is true for the user and kernel text segments.
func (seg Segment) IsText() bool {
	return seg == SEGMENT_TEXT || seg == SEGMENT_KTEXT
}

// IsData is true for the user and kernel data segments.
func (seg Segment) IsData() bool {
	return seg == SEGMENT_DATA || seg == SEGMENT_KDATA
}

// Layout holds the segment bases and limits of the target address space.
// Limits are inclusive.
type Layout struct {
	TextBase        uint32 `toml:"text_base"`
	TextLimit       uint32 `toml:"text_limit"`
	DataSegmentBase uint32 `toml:"data_segment_base"`
	ExternBase      uint32 `toml:"extern_base"`
	GlobalPointer   uint32 `toml:"global_pointer"`
	DataBase        uint32 `toml:"data_base"`
	HeapBase        uint32 `toml:"heap_base"`
	StackPointer    uint32 `toml:"stack_pointer"`
	DataLimit       uint32 `toml:"data_limit"`
	KernelTextBase  uint32 `toml:"kernel_text_base"`
	KernelTextLimit uint32 `toml:"kernel_text_limit"`
	KernelDataBase  uint32 `toml:"kernel_data_base"`
	KernelDataLimit uint32 `toml:"kernel_data_limit"`
}

// DefaultLayout is the 32-bit address space with text at 0x00400000.
var DefaultLayout = Layout{
	TextBase:        0x0040_0000,
	TextLimit:       0x0fff_fffc,
	DataSegmentBase: 0x1000_0000,
	ExternBase:      0x1000_0000,
	GlobalPointer:   0x1000_8000,
	DataBase:        0x1001_0000,
	HeapBase:        0x1004_0000,
	StackPointer:    0x7fff_effc,
	DataLimit:       0x7fff_ffff,
	KernelTextBase:  0x8000_0000,
	KernelTextLimit: 0x8fff_fffc,
	KernelDataBase:  0x9000_0000,
	KernelDataLimit: 0xffff_efff,
}

// CompactDataLayout is a 32KiB address space with data at address 0.
var CompactDataLayout = Layout{
	TextBase:        0x3000,
	TextLimit:       0x3ffc,
	DataSegmentBase: 0x0000,
	ExternBase:      0x1000,
	GlobalPointer:   0x1800,
	DataBase:        0x0000,
	HeapBase:        0x2000,
	StackPointer:    0x2ffc,
	DataLimit:       0x2fff,
	KernelTextBase:  0x4000,
	KernelTextLimit: 0x4ffc,
	KernelDataBase:  0x5000,
	KernelDataLimit: 0x7eff,
}

// CompactTextLayout is a 32KiB address space with text at address 0.
var CompactTextLayout = Layout{
	TextBase:        0x0000,
	TextLimit:       0x0ffc,
	DataSegmentBase: 0x1000,
	ExternBase:      0x1000,
	GlobalPointer:   0x1800,
	DataBase:        0x2000,
	HeapBase:        0x3000,
	StackPointer:    0x3ffc,
	DataLimit:       0x3fff,
	KernelTextBase:  0x4000,
	KernelTextLimit: 0x4ffc,
	KernelDataBase:  0x5000,
	KernelDataLimit: 0x7eff,
}

var layouts = map[string]*Layout{
	"default":      &DefaultLayout,
	"compact-data": &CompactDataLayout,
	"compact-text": &CompactTextLayout,
}

// LayoutNames lists the names accepted by LayoutByName.
func LayoutNames() []string {
	return slices.Sorted(maps.Keys(layouts))
}

// LayoutByName returns a predefined layout.
func LayoutByName(name string) (layout Layout, ok bool) {
	ly, ok := layouts[name]
	if ok {
		layout = *ly
	}
	return
}

// Segment returns the segment holding address.
func (ly *Layout) Segment(address uint32) Segment {
	switch {
	case address >= ly.TextBase && address <= ly.TextLimit:
		return SEGMENT_TEXT
	case address >= ly.DataSegmentBase && address <= ly.DataLimit:
		return SEGMENT_DATA
	case address >= ly.KernelTextBase && address <= ly.KernelTextLimit:
		return SEGMENT_KTEXT
	case address >= ly.KernelDataBase && address <= ly.KernelDataLimit:
		return SEGMENT_KDATA
	}
	return SEGMENT_NONE
}

// Validate checks that every segment is non-empty and that the user
// segments do not overlap.
func (ly *Layout) Validate() (err error) {
	switch {
	case ly.TextBase > ly.TextLimit,
		ly.DataSegmentBase > ly.DataLimit,
		ly.KernelTextBase > ly.KernelTextLimit,
		ly.KernelDataBase > ly.KernelDataLimit:
		err = ErrLayout
	case ly.DataBase < ly.DataSegmentBase || ly.DataBase > ly.DataLimit,
		ly.ExternBase < ly.DataSegmentBase || ly.ExternBase > ly.DataLimit:
		err = ErrLayout
	case ly.TextBase <= ly.DataLimit && ly.DataSegmentBase <= ly.TextLimit:
		err = ErrLayout
	}
	return
}
