package frame

import (
	"fmt"
	"sort"
)

// Layout classifies how a format arranges its pixels in memory.
type Layout int

const (
	LayoutUnsupported Layout = iota
	// LayoutPackedRGB is interleaved 8-bit R, G, B (or B, G, R)
	LayoutPackedRGB
	// LayoutRGB565 is one little-endian 16-bit word per pixel
	LayoutRGB565
	// LayoutPackedYUV422 shares one chroma pair between 2 horizontal pixels
	LayoutPackedYUV422
	// LayoutPlanarYUV420 is a Y plane followed by two quarter size chroma planes
	LayoutPlanarYUV420
	// LayoutVendor422 is a vendor line-interleaved stream of signed samples
	LayoutVendor422
	// LayoutCompressed is a bitstream which can't be converted per pixel
	LayoutCompressed
)

func (l Layout) String() string {
	switch l {
	case LayoutPackedRGB:
		return "packed-rgb"
	case LayoutRGB565:
		return "rgb565"
	case LayoutPackedYUV422:
		return "packed-yuv-422"
	case LayoutPlanarYUV420:
		return "planar-yuv-420"
	case LayoutVendor422:
		return "vendor-422-interleaved"
	case LayoutCompressed:
		return "compressed"
	case LayoutUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Subsampled tells whether the layout shares chroma samples between pixels,
// which requires even frame dimensions.
func (l Layout) Subsampled() bool {
	switch l {
	case LayoutPackedYUV422, LayoutPlanarYUV420, LayoutVendor422:
		return true
	}
	return false
}

// Info describes a registered format.
type Info struct {
	Code        FourCC
	Description string
	Layout      Layout
}

var registry = map[FourCC]Info{}

func register(code FourCC, description string, layout Layout) {
	registry[code] = Info{Code: code, Description: description, Layout: layout}
}

func init() {
	register(FormatRGB3, "24-bit RGB 8-8-8", LayoutPackedRGB)
	register(FormatBGR3, "24-bit BGR 8-8-8", LayoutPackedRGB)
	register(FormatRGBP, "16-bit RGB 5-6-5", LayoutRGB565)
	register(FormatYUYV, "YUYV 4:2:2", LayoutPackedYUV422)
	register(FormatYVYU, "YVYU 4:2:2", LayoutPackedYUV422)
	register(FormatUYVY, "UYVY 4:2:2", LayoutPackedYUV422)
	register(FormatYU12, "Planar YUV 4:2:0", LayoutPlanarYUV420)
	register(FormatYV12, "Planar YVU 4:2:0", LayoutPlanarYUV420)
	register(FormatS501, "GSPCA SPCA501", LayoutVendor422)
	register(FormatS505, "GSPCA SPCA505", LayoutVendor422)
	register(FormatS508, "GSPCA SPCA508", LayoutVendor422)
	register(FormatMJPG, "Motion-JPEG", LayoutCompressed)
	register(FormatJPEG, "JFIF JPEG", LayoutCompressed)
	register(FormatH264, "H.264", LayoutCompressed)
	register(FormatMPEG, "MPEG-1/2/4 Multiplexed", LayoutCompressed)
	register(FormatMPG4, "MPEG-4 Part 2 ES", LayoutCompressed)
}

// Lookup returns the registry entry for f. Unknown codes report false.
func Lookup(f FourCC) (Info, bool) {
	info, ok := registry[f]
	return info, ok
}

// Formats lists every registered format sorted by tag.
func Formats() []Info {
	infos := make([]Info, 0, len(registry))
	for _, info := range registry {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Code.String() < infos[j].Code.String()
	})
	return infos
}
