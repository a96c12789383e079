package frame

import "image"

type Decoder interface {
	Decode(frame []byte, width, height int) (image.Image, func(), error)
}

// DecoderFunc is a proxy type for Decoder
type DecoderFunc func(frame []byte, width, height int) (image.Image, func(), error)

func (f DecoderFunc) Decode(frame []byte, width, height int) (image.Image, func(), error) {
	return f(frame, width, height)
}

// Order is the channel order of a 24-bit output pixel.
type Order int

const (
	OrderRGB Order = iota
	OrderBGR
)

func (o Order) String() string {
	if o == OrderBGR {
		return "BGR"
	}
	return "RGB"
}
