package bmp

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Decode reads a bitmap from r. The reader must support seeking: the pixel
// array lives at the offset named in the file header, and row padding is
// skipped with relative seeks.
//
// When the stored data size does not match the 24-bit row stride for the
// stored dimensions (a different bit depth, compressed data, or a corrupt
// header), Decode returns a headers-only image rather than an error;
// HasPixelData reports false on the result.
func Decode(r io.ReadSeeker) (*Image, error) {
	var id [fileIDLen]byte
	if _, err := io.ReadFull(r, id[:]); err != nil {
		return nil, ErrNotBitmap
	}
	if id != fileID {
		return nil, ErrNotBitmap
	}

	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: file header", ErrTruncatedHeader)
	}
	var info InfoHeader
	if err := binary.Read(r, binary.LittleEndian, &info); err != nil {
		return nil, fmt.Errorf("%w: info header", ErrTruncatedHeader)
	}

	width, height := int(info.Width), int(info.Height)
	img := &Image{
		Header: header,
		Info:   info,
		width:  width,
		height: height,
	}
	if width > 0 {
		img.padding = rowPadding(width)
	}

	if width <= 0 || height <= 0 || uint32(rowStride(width)*height) != info.DataSize {
		return img, nil
	}

	if _, err := r.Seek(int64(header.PixelOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to pixel array: %w", err)
	}

	pixels := make([]Pixel, width*height)
	for y := 0; y < height; y++ {
		row := pixels[y*width : (y+1)*width]
		if err := binary.Read(r, binary.LittleEndian, row); err != nil {
			return nil, fmt.Errorf("reading row %d: %w", y, err)
		}
		if _, err := r.Seek(int64(img.padding), io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("skipping row %d padding: %w", y, err)
		}
	}
	img.pixels = pixels
	return img, nil
}

// Open reads a bitmap file from disk.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
