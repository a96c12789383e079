package convert

import (
	"errors"
	"fmt"

	"github.com/pion/rgbconv/pkg/frame"
)

// Kind classifies a conversion failure.
type Kind int

const (
	KindNone Kind = iota
	KindUnsupportedFormat
	KindAllocation
	KindInvalidArgument
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnsupportedFormat:
		return "unsupported format"
	case KindAllocation:
		return "allocation failure"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return "unknown"
	}
}

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrAllocation        = errors.New("unable to allocate scratch buffer")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// UnsupportedFormatError tells the caller that Code is unknown or is a
// compressed format which can't be converted pixel by pixel.
type UnsupportedFormatError struct {
	Code frame.FourCC
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unable to decode format %s", e.Code)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// InvalidArgumentError reports a frame or buffer that doesn't fit the
// requested geometry.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArgument(format string, a ...interface{}) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, a...)}
}

// KindOf returns the kind of err, KindNone for a nil error.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnsupportedFormat):
		return KindUnsupportedFormat
	case errors.Is(err, ErrAllocation):
		return KindAllocation
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	default:
		return KindUnknown
	}
}
