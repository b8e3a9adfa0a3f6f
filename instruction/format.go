package instruction

// Format is the encoding layout of a basic instruction.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R  = Format(0) // R
	FORMAT_R4 = Format(1) // R4
	FORMAT_I  = Format(2) // I
	FORMAT_S  = Format(3) // S
	FORMAT_B  = Format(4) // B
	FORMAT_U  = Format(5) // U
	FORMAT_J  = Format(6) // J
)

// IsRelative is true for formats whose last operand is a PC relative
// branch offset.
func (fm Format) IsRelative() bool {
	return fm == FORMAT_B || fm == FORMAT_J
}

// scramble reorders a branch offset into the bit order of its mask field.
func (fm Format) scramble(offset int32) uint32 {
	v := uint32(offset)
	switch fm {
	case FORMAT_B:
		// imm[12|10:5|4:1|11]
		return ((v>>12)&1)<<11 | ((v>>5)&0x3f)<<5 | ((v>>1)&0xf)<<1 | (v>>11)&1
	case FORMAT_J:
		// imm[20|10:1|11|19:12]
		return ((v>>20)&1)<<19 | ((v>>1)&0x3ff)<<9 | ((v>>11)&1)<<8 | (v>>12)&0xff
	}
	return v
}

// unscramble is the inverse of scramble, with sign extension.
func (fm Format) unscramble(field uint32) int32 {
	switch fm {
	case FORMAT_B:
		v := ((field>>11)&1)<<12 | ((field>>5)&0x3f)<<5 | ((field>>1)&0xf)<<1 | (field&1)<<11
		return int32(v<<19) >> 19
	case FORMAT_J:
		v := ((field>>19)&1)<<20 | ((field>>9)&0x3ff)<<1 | ((field>>8)&1)<<11 | (field&0xff)<<12
		return int32(v<<11) >> 11
	}
	return int32(field)
}
