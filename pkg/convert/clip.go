package convert

// clip saturates v to the [0, 255] range.
func clip(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// chroma holds the per-pair colour offsets shared by every luma sample
// that uses the same U and V.
type chroma struct {
	u1, rg, v1 int
}

// newChroma computes a shift-and-add approximation of the BT.601
// YCbCr to RGB matrix.
func newChroma(u, v uint8) chroma {
	cu := int(u) - 128
	cv := int(v) - 128
	return chroma{
		u1: ((cu << 7) + cu) >> 6,
		rg: ((cu << 1) + cu + (cv << 2) + (cv << 1)) >> 3,
		v1: ((cv << 1) + cv) >> 1,
	}
}

// put writes the R, G, B bytes of luma y into dst[0:3].
func (c chroma) put(dst []byte, y uint8) {
	yy := int(y)
	dst[0] = clip(yy + c.v1)
	dst[1] = clip(yy - c.rg)
	dst[2] = clip(yy + c.u1)
}
