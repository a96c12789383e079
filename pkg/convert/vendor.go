package convert

type vendorLine int

const (
	lineY vendorLine = iota
	lineU
	lineV
)

// vendorLayout is the order of the 4 lines that make up every 2-row group
// of a Sunplus SPCA5xx stream. Y lines are full width, U and V lines are
// half width.
type vendorLayout [4]vendorLine

var (
	layoutS501 = vendorLayout{lineY, lineU, lineY, lineV}
	layoutS505 = vendorLayout{lineY, lineY, lineU, lineV}
	layoutS508 = vendorLayout{lineY, lineU, lineV, lineY}
)

// unpack rebiases the signed samples of src and writes them to dst as
// planar YUV 4:2:0 (Y, then U at width*height, then V at width*height*5/4).
func (l vendorLayout) unpack(dst, src []byte, width, height int) {
	yi := width * height
	ui := yi
	vi := yi * 5 / 4
	cw := width / 2

	s := 0
	for row := 0; row < height; row += 2 {
		yRow := row
		co := row / 2 * cw
		for _, line := range l {
			var out []byte
			switch line {
			case lineY:
				out = dst[yRow*width : (yRow+1)*width]
				yRow++
			case lineU:
				out = dst[ui+co : ui+co+cw]
			case lineV:
				out = dst[vi+co : vi+co+cw]
			}
			s += rebias(out, src[s:s+len(out)])
		}
	}
}

// rebias flips the sign bit of every sample, moving it from the sensor's
// -128..127 range to 0..255. It returns the number of bytes consumed.
func rebias(dst, src []byte) int {
	for i, b := range src {
		dst[i] = b ^ 0x80
	}
	return len(src)
}
