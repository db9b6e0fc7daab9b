package bmp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Encode writes the image to w: identifier, file header, info header, then
// the pixel rows top-to-bottom, each row as width BGR triplets followed by
// the padding zero bytes. Encoding a headers-only image fails with
// ErrNoPixelData.
func (m *Image) Encode(w io.Writer) error {
	if m.pixels == nil {
		return ErrNoPixelData
	}

	if err := binary.Write(w, binary.LittleEndian, fileID); err != nil {
		return fmt.Errorf("writing identifier: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, m.Header); err != nil {
		return fmt.Errorf("writing file header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, m.Info); err != nil {
		return fmt.Errorf("writing info header: %w", err)
	}

	padding := make([]byte, m.padding)
	for y := 0; y < m.height; y++ {
		row := m.pixels[y*m.width : (y+1)*m.width]
		if err := binary.Write(w, binary.LittleEndian, row); err != nil {
			return fmt.Errorf("writing row %d: %w", y, err)
		}
		if _, err := w.Write(padding); err != nil {
			return fmt.Errorf("writing row %d padding: %w", y, err)
		}
	}
	return nil
}

// Save writes the image to a file, creating or truncating it.
func (m *Image) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := m.Encode(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
