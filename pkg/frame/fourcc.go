package frame

// FourCC identifies a pixel format by four ASCII characters packed into
// 32 bits. The first character is stored in the least significant byte,
// the same way V4L2 builds its pixel format codes.
type FourCC uint32

// NewFourCC packs tag into a FourCC. Tags shorter than four characters are
// padded with spaces and anything past the fourth character is ignored.
func NewFourCC(tag string) FourCC {
	b := [4]byte{' ', ' ', ' ', ' '}
	copy(b[:], tag)
	return FourCC(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

func (f FourCC) bytes() [4]byte {
	return [4]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)}
}

// String returns the 4-character tag, e.g. "YUYV".
func (f FourCC) String() string {
	b := f.bytes()
	return string(b[:])
}

// CString returns the 4-character tag followed by a NUL terminator.
func (f FourCC) CString() string {
	b := f.bytes()
	return string(append(b[:], 0))
}
