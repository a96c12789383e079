package frame

const (
	// Packed RGB Formats

	// FormatRGB3 https://www.kernel.org/doc/html/latest/userspace-api/media/v4l/pixfmt-rgb.html
	FormatRGB3 = FourCC('R' | 'G'<<8 | 'B'<<16 | '3'<<24)
	// FormatBGR3 is FormatRGB3 with red and blue swapped
	FormatBGR3 = FourCC('B' | 'G'<<8 | 'R'<<16 | '3'<<24)
	// FormatRGBP is little-endian RGB 5:6:5
	FormatRGBP = FourCC('R' | 'G'<<8 | 'B'<<16 | 'P'<<24)

	// YUV Formats

	// FormatYUYV https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUYV = FourCC('Y' | 'U'<<8 | 'Y'<<16 | 'V'<<24)
	// FormatYVYU https://www.fourcc.org/pixel-format/yuv-yvyu/
	FormatYVYU = FourCC('Y' | 'V'<<8 | 'Y'<<16 | 'U'<<24)
	// FormatUYVY https://www.fourcc.org/pixel-format/yuv-uyvy/
	FormatUYVY = FourCC('U' | 'Y'<<8 | 'V'<<16 | 'Y'<<24)
	// FormatYU12 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatYU12 = FourCC('Y' | 'U'<<8 | '1'<<16 | '2'<<24)
	// FormatYV12 https://www.fourcc.org/pixel-format/yuv-yv12/
	FormatYV12 = FourCC('Y' | 'V'<<8 | '1'<<16 | '2'<<24)

	// Vendor Formats
	//
	// Sunplus SPCA5xx bridges interleave signed Y, U and V lines. They only
	// differ in how lines are ordered inside every 2-row group.

	// FormatS501 orders lines as Y, U, Y, V
	FormatS501 = FourCC('S' | '5'<<8 | '0'<<16 | '1'<<24)
	// FormatS505 orders lines as Y, Y, U, V
	FormatS505 = FourCC('S' | '5'<<8 | '0'<<16 | '5'<<24)
	// FormatS508 orders lines as Y, U, V, Y
	FormatS508 = FourCC('S' | '5'<<8 | '0'<<16 | '8'<<24)

	// Compressed Formats

	// FormatMJPG https://www.fourcc.org/mjpg/
	FormatMJPG = FourCC('M' | 'J'<<8 | 'P'<<16 | 'G'<<24)
	FormatJPEG = FourCC('J' | 'P'<<8 | 'E'<<16 | 'G'<<24)
	FormatH264 = FourCC('H' | '2'<<8 | '6'<<16 | '4'<<24)
	FormatMPEG = FourCC('M' | 'P'<<8 | 'E'<<16 | 'G'<<24)
	FormatMPG4 = FourCC('M' | 'P'<<8 | 'G'<<16 | '4'<<24)
)

// YUV aliases

// FormatYUY2 is an alias of FormatYUYV
const FormatYUY2 = FormatYUYV

// FormatI420 is an alias of FormatYU12
const FormatI420 = FormatYU12
