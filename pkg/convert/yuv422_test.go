package convert

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/pion/rgbconv/pkg/frame"
)

func TestPackedYUV422Gray(t *testing.T) {
	const (
		width  = 4
		height = 2
	)
	input := make([]byte, 2*width*height)
	for i := range input {
		input[i] = 128
	}
	dst := make([]byte, 3*width*height)
	if err := Convert(input, dst, frame.FormatYUYV, width, height, frame.OrderRGB); err != nil {
		t.Fatal(err)
	}
	for i, b := range dst {
		if b != 128 {
			t.Fatalf("expected neutral gray, got %d at %d", b, i)
		}
	}
}

func TestPackedYUV422Variants(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	// Y0=100, Y1=110, U=140, V=120 on the first row and neutral chroma on the second.
	cases := map[frame.FourCC][]byte{
		frame.FormatYUYV: {
			100, 140, 110, 120,
			100, 128, 110, 128,
		},
		frame.FormatYVYU: {
			100, 120, 110, 140,
			100, 128, 110, 128,
		},
		frame.FormatUYVY: {
			140, 100, 120, 110,
			128, 100, 128, 110,
		},
	}
	expected := []byte{
		88, 102, 124, 98, 112, 134,
		100, 100, 100, 110, 110, 110,
	}
	for code, input := range cases {
		code, input := code, input
		t.Run(code.String(), func(t *testing.T) {
			dst := make([]byte, 3*width*height)
			if err := Convert(input, dst, code, width, height, frame.OrderRGB); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(expected, dst) {
				t.Errorf("Wrong decode result,\nexpected:\n%v\ngot:\n%v", expected, dst)
			}
		})
	}
}

func TestPackedYUV422ChromaSharing(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	input := []byte{
		100, 140, 110, 120,
		50, 140, 60, 120,
	}
	dst := make([]byte, 3*width*height)
	if err := Convert(input, dst, frame.FormatYUYV, width, height, frame.OrderRGB); err != nil {
		t.Fatal(err)
	}
	ys := []int{100, 110, 50, 60}
	for row := 0; row < height; row++ {
		left := dst[row*6 : row*6+3]
		right := dst[row*6+3 : row*6+6]
		dy := ys[2*row+1] - ys[2*row]
		for ch := 0; ch < 3; ch++ {
			if d := int(right[ch]) - int(left[ch]); d != dy {
				t.Errorf("row %d channel %d: pair differs by %d, expected luma difference %d", row, ch, d, dy)
			}
		}
	}
}

func TestPackedYUV422BGR(t *testing.T) {
	input := []byte{100, 140, 110, 120}
	dst := make([]byte, 6)
	if err := Convert(input, dst, frame.FormatYUYV, 2, 1, frame.OrderBGR); err == nil {
		t.Fatal("expected odd height to be rejected")
	}

	input = append(input, input...)
	dst = make([]byte, 12)
	if err := Convert(input, dst, frame.FormatYUYV, 2, 2, frame.OrderBGR); err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		124, 102, 88, 134, 112, 98,
		124, 102, 88, 134, 112, 98,
	}
	if !reflect.DeepEqual(expected, dst) {
		t.Errorf("Wrong decode result,\nexpected:\n%v\ngot:\n%v", expected, dst)
	}
}

func BenchmarkPackedYUV422(b *testing.B) {
	sizes := []struct {
		width, height int
	}{
		{640, 480},
		{1920, 1080},
	}
	for _, sz := range sizes {
		sz := sz
		b.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(b *testing.B) {
			input := make([]byte, sz.width*sz.height*2)
			output := make([]byte, sz.width*sz.height*3)
			for i := 0; i < b.N; i++ {
				layoutYUYV.convert(output, input, sz.width, sz.height)
			}
		})
	}
}
