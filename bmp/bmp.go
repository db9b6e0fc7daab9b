// Package bmp reads and writes 24-bit uncompressed Windows bitmaps.
//
// Only the 40-byte BITMAPINFOHEADER variant with no compression and no
// palette is supported. Rows are stored and streamed in logical order, top
// row first; the conventional bottom-up row layout of positive-height BMP
// files is deliberately not special-cased, so files written by this package
// appear vertically flipped to decoders that honor the convention.
package bmp

import "fmt"

// Pixel is a single 24-bit color. Field order matches the on-disk BGR
// triplet so rows serialize directly.
type Pixel struct {
	B, G, R uint8
}

// RGB builds a Pixel from red, green and blue channels.
func RGB(r, g, b uint8) Pixel {
	return Pixel{B: b, G: g, R: r}
}

// Image is an in-memory bitmap: the two file headers plus a row-major pixel
// store addressed as pixels[y*width+x]. Images from New always carry pixel
// data; images from Open or Decode carry headers only when the stored data
// size does not match this codec's 24-bit row stride.
type Image struct {
	Header FileHeader
	Info   InfoHeader

	width, height int
	padding       int
	pixels        []Pixel
}

// New returns a black-filled image of the given dimensions with both
// headers derived from them. Width and height must be positive.
func New(width, height int) (*Image, error) {
	if width <= 0 {
		return nil, fmt.Errorf("bmp: width must be positive, got %d", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("bmp: height must be positive, got %d", height)
	}
	return &Image{
		Header:  newFileHeader(width, height),
		Info:    newInfoHeader(width, height),
		width:   width,
		height:  height,
		padding: rowPadding(width),
		pixels:  make([]Pixel, width*height),
	}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Padding returns the zero bytes appended to each row on disk.
func (m *Image) Padding() int { return m.padding }

// HasPixelData reports whether the image carries a pixel store. It is false
// only for images decoded from files whose stored data size disagrees with
// the 24-bit row stride.
func (m *Image) HasPixelData() bool { return m.pixels != nil }

// SetPixel writes p at (x, y). Out-of-range coordinates return an
// *OutOfBoundsError and write nothing.
func (m *Image) SetPixel(x, y int, p Pixel) error {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return &OutOfBoundsError{X: x, Y: y}
	}
	if m.pixels == nil {
		return ErrNoPixelData
	}
	m.pixels[y*m.width+x] = p
	return nil
}

// GetPixel returns a copy of the pixel at (x, y). Out-of-range coordinates
// return an *OutOfBoundsError.
func (m *Image) GetPixel(x, y int) (Pixel, error) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Pixel{}, &OutOfBoundsError{X: x, Y: y}
	}
	if m.pixels == nil {
		return Pixel{}, ErrNoPixelData
	}
	return m.pixels[y*m.width+x], nil
}
