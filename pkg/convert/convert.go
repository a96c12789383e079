// Package convert turns raw captured frames into interleaved 24-bit RGB or
// BGR buffers.
package convert

import (
	"math"
	"sync"

	"github.com/pion/logging"
	rgblogging "github.com/pion/rgbconv/internal/logging"
	"github.com/pion/rgbconv/pkg/frame"
)

// DefaultMaxScratchBytes bounds a single scratch buffer, enough for an 8K RGB frame.
const DefaultMaxScratchBytes = 256 << 20

// Config stores parameters used by Converter.
type Config struct {
	Logger logging.LeveledLogger
	// MaxScratchBytes caps each scratch buffer. Zero means no limit.
	MaxScratchBytes int
}

// Option is a type of Converter functional option.
type Option func(*Config)

// WithLogger replaces the default "rgbconv/convert" logger.
func WithLogger(l logging.LeveledLogger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithMaxScratchBytes sets the largest scratch buffer a conversion may use.
func WithMaxScratchBytes(n int) Option {
	return func(c *Config) {
		c.MaxScratchBytes = n
	}
}

// Converter dispatches frames to the pipeline of their format.
// A Converter is safe for concurrent use.
type Converter struct {
	log     logging.LeveledLogger
	scratch scratchPool

	mu      sync.Mutex
	lastErr string
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	cfg := Config{
		MaxScratchBytes: DefaultMaxScratchBytes,
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = rgblogging.NewLogger("convert")
	}

	return &Converter{
		log:     cfg.Logger,
		scratch: scratchPool{max: cfg.MaxScratchBytes},
	}
}

var defaultConverter = New()

// Convert converts src with the default Converter.
func Convert(src, dst []byte, code frame.FourCC, width, height int, order frame.Order) error {
	return defaultConverter.Convert(src, dst, code, width, height, order)
}

// LastError returns the message of the last failed call to the package
// level Convert.
func LastError() string {
	return defaultConverter.LastError()
}

// singleStage decodes straight to RGB.
type singleStage interface {
	convert(dst, src []byte, width, height int)
}

// pipeline is one of direct, rgb565, packedYUV422, planarYUV420 or vendorLayout.
type pipeline interface{}

var pipelines = map[frame.FourCC]pipeline{
	frame.FormatRGB3: direct{native: frame.OrderRGB},
	frame.FormatBGR3: direct{native: frame.OrderBGR},
	frame.FormatRGBP: rgb565{},
	frame.FormatYUYV: layoutYUYV,
	frame.FormatYVYU: layoutYVYU,
	frame.FormatUYVY: layoutUYVY,
	frame.FormatYU12: layoutYU12,
	frame.FormatYV12: layoutYV12,
	frame.FormatS501: layoutS501,
	frame.FormatS505: layoutS505,
	frame.FormatS508: layoutS508,
}

// Supported tells whether code can be converted.
func Supported(code frame.FourCC) bool {
	_, ok := pipelines[code]
	return ok
}

// Convert writes width*height pixels of src, encoded as code, to dst in the
// given channel order. dst must hold at least 3*width*height bytes and all
// of them are written on success. On failure dst content is unspecified.
func (c *Converter) Convert(src, dst []byte, code frame.FourCC, width, height int, order frame.Order) error {
	err := c.convert(src, dst, code, width, height, order)
	if err != nil {
		c.log.Warnf("%dx%d %s to %s: %v", width, height, code, order, err)
		c.mu.Lock()
		c.lastErr = err.Error()
		c.mu.Unlock()
	}
	return err
}

// LastError returns the message of the converter's last failure, or an
// empty string if none happened yet. Concurrent callers should rely on the
// returned errors instead.
func (c *Converter) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Converter) convert(src, dst []byte, code frame.FourCC, width, height int, order frame.Order) error {
	p, ok := pipelines[code]
	if !ok {
		return &UnsupportedFormatError{Code: code}
	}
	if err := validate(src, dst, code, width, height); err != nil {
		return err
	}
	c.log.Tracef("converting %dx%d %s to %s", width, height, code, order)

	n := 3 * width * height
	out := dst[:n]

	switch p := p.(type) {
	case direct:
		p.convert(out, src, width, height, order)
		return nil
	case singleStage:
		return c.decode(out, order, func(rgb []byte) error {
			p.convert(rgb, src, width, height)
			return nil
		})
	case vendorLayout:
		return c.decode(out, order, func(rgb []byte) error {
			yuv, err := c.scratch.get(width * height * 3 / 2)
			if err != nil {
				return err
			}
			defer c.scratch.put(yuv)

			p.unpack(*yuv, src, width, height)
			layoutYU12.convert(rgb, *yuv, width, height)
			return nil
		})
	}
	return &UnsupportedFormatError{Code: code}
}

// decode runs fn on dst directly for RGB output. BGR output is decoded to
// an RGB scratch buffer first and swapped into dst.
func (c *Converter) decode(dst []byte, order frame.Order, fn func(rgb []byte) error) error {
	if order == frame.OrderRGB {
		return fn(dst)
	}

	rgb, err := c.scratch.get(len(dst))
	if err != nil {
		return err
	}
	defer c.scratch.put(rgb)

	if err := fn(*rgb); err != nil {
		return err
	}
	swapRB(dst, *rgb)
	return nil
}

// checkSize rejects frame sizes whose 3*width*height output doesn't fit in an int.
func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return invalidArgument("frame size %dx%d is not positive", width, height)
	}
	if width > math.MaxInt/3/height {
		return invalidArgument("frame size %dx%d is too large", width, height)
	}
	return nil
}

func validate(src, dst []byte, code frame.FourCC, width, height int) error {
	if err := checkSize(width, height); err != nil {
		return err
	}
	if info, ok := frame.Lookup(code); ok && info.Layout.Subsampled() && (width%2 != 0 || height%2 != 0) {
		return invalidArgument("%s needs even frame size, got %dx%d", code, width, height)
	}

	size, err := frame.LayoutSize(code, width, height)
	if err != nil {
		return invalidArgument("%v", err)
	}
	if len(src) < size {
		return invalidArgument("frame length (%d) less than expected (%d)", len(src), size)
	}
	if n := 3 * width * height; len(dst) < n {
		return invalidArgument("output length (%d) less than expected (%d)", len(dst), n)
	}
	return nil
}
