package convert

import (
	"image"
	"sync"

	"github.com/pion/rgbconv/pkg/frame"
)

// NewDecoder returns a Decoder built on the default Converter.
func NewDecoder(f frame.FourCC, order frame.Order) (frame.Decoder, error) {
	return defaultConverter.NewDecoder(f, order)
}

// NewDecoder returns a Decoder that converts frames encoded as f into
// *frame.RGB24Img. The image is backed by a pooled buffer: it must not be
// used after the returned release func is called.
func (c *Converter) NewDecoder(f frame.FourCC, order frame.Order) (frame.Decoder, error) {
	if !Supported(f) {
		return nil, &UnsupportedFormatError{Code: f}
	}

	return frame.DecoderFunc(func(src []byte, width, height int) (image.Image, func(), error) {
		if err := checkSize(width, height); err != nil {
			return nil, func() {}, err
		}

		buf, err := c.scratch.get(3 * width * height)
		if err != nil {
			return nil, func() {}, err
		}

		var once sync.Once
		release := func() {
			once.Do(func() { c.scratch.put(buf) })
		}

		if err := c.Convert(src, *buf, f, width, height, order); err != nil {
			release()
			return nil, func() {}, err
		}
		return frame.NewRGB24(*buf, width, height, order), release, nil
	}), nil
}
