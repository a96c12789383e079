package convert

import (
	"fmt"
	"testing"

	"github.com/pion/rgbconv/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorUnpack(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	input := []byte{0x00, 0x01, 0x80, 0x7F, 0xFF, 0x02}
	cases := map[string]struct {
		layout   vendorLayout
		expected []byte
	}{
		"S501": {
			layout: layoutS501,
			// Y, U, Y, V
			expected: []byte{0x80, 0x81, 0xFF, 0x7F, 0x00, 0x82},
		},
		"S505": {
			layout: layoutS505,
			// Y, Y, U, V
			expected: []byte{0x80, 0x81, 0x00, 0xFF, 0x7F, 0x82},
		},
		"S508": {
			layout: layoutS508,
			// Y, U, V, Y
			expected: []byte{0x80, 0x81, 0x7F, 0x82, 0x00, 0xFF},
		},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			dst := make([]byte, width*height*3/2)
			c.layout.unpack(dst, input, width, height)
			assert.Equal(t, c.expected, dst)
		})
	}
}

func TestVendorRebias(t *testing.T) {
	dst := make([]byte, 4)
	n := rebias(dst, []byte{0x00, 0x7F, 0x80, 0xFF})
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0x80, 0xFF, 0x00, 0x7F}, dst)
}

// packVendor lays a planar YUV 4:2:0 frame out the way the camera sends it.
func packVendor(l vendorLayout, planar []byte, width, height int) []byte {
	yi := width * height
	cw := width / 2
	var out []byte
	for row := 0; row < height; row += 2 {
		yRow := row
		for _, line := range l {
			var samples []byte
			switch line {
			case lineY:
				samples = planar[yRow*width : (yRow+1)*width]
				yRow++
			case lineU:
				off := yi + row/2*cw
				samples = planar[off : off+cw]
			case lineV:
				off := yi*5/4 + row/2*cw
				samples = planar[off : off+cw]
			}
			for _, s := range samples {
				out = append(out, s^0x80)
			}
		}
	}
	return out
}

func TestVendorGeometry(t *testing.T) {
	const (
		width  = 8
		height = 6
	)
	planar := make([]byte, width*height*3/2)
	for i := range planar {
		planar[i] = uint8(i * 7)
	}
	for name, l := range map[string]vendorLayout{"S501": layoutS501, "S505": layoutS505, "S508": layoutS508} {
		l := l
		t.Run(name, func(t *testing.T) {
			src := packVendor(l, planar, width, height)
			require.Len(t, src, len(planar))

			dst := make([]byte, len(planar))
			l.unpack(dst, src, width, height)
			assert.Equal(t, planar, dst)
		})
	}
}

func TestVendorConvert(t *testing.T) {
	const (
		width  = 4
		height = 4
	)
	// Raw zero is the middle of the signed range: neutral gray once rebiased.
	input := make([]byte, width*height*3/2)
	for _, code := range []frame.FourCC{frame.FormatS501, frame.FormatS505, frame.FormatS508} {
		for _, order := range []frame.Order{frame.OrderRGB, frame.OrderBGR} {
			dst := make([]byte, 3*width*height)
			require.NoError(t, Convert(input, dst, code, width, height, order))
			for i, b := range dst {
				if b != 128 {
					t.Fatalf("%s %s: expected 128 at %d, got %d", code, order, i, b)
				}
			}
		}
	}
}

func TestVendorMatchesPlanar(t *testing.T) {
	const (
		width  = 6
		height = 4
	)
	planar := randomFrame(width * height * 3 / 2)
	expected := make([]byte, 3*width*height)
	require.NoError(t, Convert(planar, expected, frame.FormatYU12, width, height, frame.OrderBGR))

	for code, l := range map[frame.FourCC]vendorLayout{
		frame.FormatS501: layoutS501,
		frame.FormatS505: layoutS505,
		frame.FormatS508: layoutS508,
	} {
		dst := make([]byte, 3*width*height)
		require.NoError(t, Convert(packVendor(l, planar, width, height), dst, code, width, height, frame.OrderBGR))
		assert.Equal(t, expected, dst, code.String())
	}
}

func BenchmarkVendorUnpack(b *testing.B) {
	sizes := []struct {
		width, height int
	}{
		{640, 480},
		{1920, 1080},
	}
	for _, sz := range sizes {
		sz := sz
		b.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(b *testing.B) {
			input := make([]byte, sz.width*sz.height*3/2)
			output := make([]byte, sz.width*sz.height*3/2)
			for i := 0; i < b.N; i++ {
				layoutS501.unpack(output, input, sz.width, sz.height)
			}
		})
	}
}
