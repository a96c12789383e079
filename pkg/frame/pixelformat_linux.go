//go:build linux
// +build linux

package frame

import "github.com/blackjack/webcam"

// FromPixelFormat converts a V4L2 pixel format reported by a webcam into a FourCC.
// Both use the same packing, so this never loses information.
func FromPixelFormat(pf webcam.PixelFormat) FourCC {
	return FourCC(pf)
}

// PixelFormat returns the V4L2 pixel format matching f, as accepted by
// (*webcam.Webcam).SetImageFormat.
func (f FourCC) PixelFormat() webcam.PixelFormat {
	return webcam.PixelFormat(f)
}
