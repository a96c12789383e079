package frame

import "fmt"

// FrameSizeMap returns a function to get the number of bytes a frame will
// occupy in the given format. Compressed formats have no fixed size and are
// left out.
var FrameSizeMap = map[FourCC]frameSizeFunc{
	FormatRGB3: frameSizeRGB24,
	FormatBGR3: frameSizeRGB24,
	FormatRGBP: frameSizeYUY2, // RGB565 and YUY2 both use 2 bytes per pixel
	FormatYUYV: frameSizeYUY2,
	FormatYVYU: frameSizeYUY2,
	FormatUYVY: frameSizeYUY2,
	FormatYU12: frameSizeI420,
	FormatYV12: frameSizeI420,
	FormatS501: frameSizeI420, // vendor streams carry as many samples as I420
	FormatS505: frameSizeI420,
	FormatS508: frameSizeI420,
}

type frameSizeFunc func(width, height int) int

func frameSizeRGB24(width, height int) int {
	return 3 * width * height
}

func frameSizeYUY2(width, height int) int {
	yi := width * height
	return 2 * yi
}

func frameSizeI420(width, height int) int {
	yi := width * height
	cbi := yi + width*height/4
	cri := cbi + width*height/4
	return cri
}

// LayoutSize returns the number of bytes a width x height frame occupies
// in format f.
func LayoutSize(f FourCC, width, height int) (int, error) {
	sizeFn, ok := FrameSizeMap[f]
	if !ok {
		return 0, fmt.Errorf("frame size of %s is unknown", f)
	}
	return sizeFn(width, height), nil
}
