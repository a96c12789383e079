package convert

// planarYUV420 converts a full resolution Y plane followed by two quarter
// resolution chroma planes. vFirst is set when the V plane comes before U.
type planarYUV420 struct {
	vFirst bool
}

var (
	layoutYU12 = planarYUV420{}
	layoutYV12 = planarYUV420{vFirst: true}
)

func (p planarYUV420) convert(dst, src []byte, width, height int) {
	yi := width * height
	ci := yi / 4
	yPlane := src[:yi]
	uPlane := src[yi : yi+ci]
	vPlane := src[yi+ci : yi+2*ci]
	if p.vFirst {
		uPlane, vPlane = vPlane, uPlane
	}

	y, c, o := 0, 0, 0
	for row := 0; row < height; row++ {
		chromaRow := c
		for x := 0; x < width; x += 2 {
			cc := newChroma(uPlane[c], vPlane[c])
			cc.put(dst[o:o+3], yPlane[y])
			cc.put(dst[o+3:o+6], yPlane[y+1])
			y += 2
			c++
			o += 6
		}
		// One chroma row serves two luma rows.
		if row%2 == 0 {
			c = chromaRow
		}
	}
}
