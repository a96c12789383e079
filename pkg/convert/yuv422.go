package convert

// packedYUV422 converts formats carrying 2 luma samples and 1 chroma pair
// in every 4 bytes. The fields are the byte offsets of each sample inside
// the group.
type packedYUV422 struct {
	y0, u, y1, v int
}

var (
	layoutYUYV = packedYUV422{y0: 0, u: 1, y1: 2, v: 3}
	layoutYVYU = packedYUV422{y0: 0, v: 1, y1: 2, u: 3}
	layoutUYVY = packedYUV422{u: 0, y0: 1, v: 2, y1: 3}
)

func (p packedYUV422) convert(dst, src []byte, width, height int) {
	n := 2 * width * height
	o := 0
	for i := 0; i < n; i += 4 {
		g := src[i : i+4 : i+4]
		c := newChroma(g[p.u], g[p.v])
		c.put(dst[o:o+3], g[p.y0])
		c.put(dst[o+3:o+6], g[p.y1])
		o += 6
	}
}
