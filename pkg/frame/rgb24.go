package frame

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

type RGB24Img struct {
	// Pix holds the image's pixels, 3 bytes per pixel in the channel order
	// given by Order. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix    []uint8
	Rect   image.Rectangle
	Stride int
	Order  Order
}

// NewRGB24 wraps pix, which must hold at least 3*width*height bytes.
func NewRGB24(pix []uint8, width, height int, order Order) *RGB24Img {
	return &RGB24Img{
		Pix:    pix[: 3*width*height : 3*width*height],
		Rect:   image.Rect(0, 0, width, height),
		Stride: width * 3,
		Order:  order,
	}
}

func (p *RGB24Img) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *RGB24Img) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB24Img) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *RGB24Img) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3] // Small capacity improves performance, see https://golang.org/issue/27857
	if p.Order == OrderBGR {
		return color.RGBA{s[2], s[1], s[0], 0xFF}
	}
	return color.RGBA{s[0], s[1], s[2], 0xFF}
}

func (p *RGB24Img) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// ToRGBA copies the image into a newly allocated *image.RGBA.
func (p *RGB24Img) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(p.Rect)
	draw.Draw(dst, p.Rect, p, p.Rect.Min, draw.Src)
	return dst
}

// Scale resamples the image to width x height with the given scaler.
// Setting scaler=nil uses draw.NearestNeighbor.
func (p *RGB24Img) Scale(width, height int, scaler draw.Scaler) *image.RGBA {
	if scaler == nil {
		scaler = draw.NearestNeighbor
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Rect, p, p.Rect, draw.Src, nil)
	return dst
}
