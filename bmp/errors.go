package bmp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBitmap reports that the input does not start with the "BM"
	// identifier and was not read any further.
	ErrNotBitmap = errors.New("bmp: not a bitmap file")

	// ErrTruncatedHeader reports that the input ended before a fixed-size
	// header could be fully read.
	ErrTruncatedHeader = errors.New("bmp: truncated header")

	// ErrNoPixelData reports an operation that needs pixel data on an
	// image that decoded headers only.
	ErrNoPixelData = errors.New("bmp: image has no pixel data")
)

// OutOfBoundsError reports a pixel access outside [0,width) x [0,height).
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("bmp: pixel (%d, %d) out of bounds", e.X, e.Y)
}
