package convert

import (
	"encoding/binary"

	"github.com/pion/rgbconv/pkg/frame"
)

// direct handles formats that are already 24-bit packed RGB or BGR.
type direct struct {
	native frame.Order
}

func (d direct) convert(dst, src []byte, width, height int, order frame.Order) {
	n := 3 * width * height
	if order == d.native {
		copy(dst[:n], src[:n])
		return
	}
	swapRB(dst[:n], src[:n])
}

// swapRB exchanges the first and third byte of every 3-byte pixel of src
// into dst. dst and src may be the same slice.
func swapRB(dst, src []byte) {
	for i := 0; i+2 < len(src); i += 3 {
		dst[i], dst[i+1], dst[i+2] = src[i+2], src[i+1], src[i]
	}
}

type rgb565 struct{}

// convert unpacks little-endian rrrrrggg gggbbbbb words. Low bits of each
// channel are left zero.
func (rgb565) convert(dst, src []byte, width, height int) {
	stride := 2 * width
	o := 0
	for row := 0; row < height; row++ {
		line := src[row*stride : (row+1)*stride]
		for x := 0; x < stride; x += 2 {
			p := binary.LittleEndian.Uint16(line[x : x+2])
			dst[o] = uint8(0xf8 & (p >> 8))
			dst[o+1] = uint8(0xfc & (p >> 3))
			dst[o+2] = uint8(0xf8 & (p << 3))
			o += 3
		}
	}
}
