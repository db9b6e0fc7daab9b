package bmp

import (
	"encoding/binary"
	"testing"
)

func TestHeaderSizes(t *testing.T) {
	if n := binary.Size(fileID); n != 2 {
		t.Errorf("identifier size = %d, want 2", n)
	}
	if n := binary.Size(FileHeader{}); n != 12 {
		t.Errorf("file header size = %d, want 12", n)
	}
	if n := binary.Size(InfoHeader{}); n != 40 {
		t.Errorf("info header size = %d, want 40", n)
	}
	if headerLen != 54 {
		t.Errorf("headerLen = %d, want 54", headerLen)
	}
}

func TestRowStride(t *testing.T) {
	tests := []struct {
		width, stride, padding int
	}{
		{1, 4, 1},
		{2, 8, 2},
		{3, 12, 3},
		{4, 12, 0},
		{5, 16, 1},
		{640, 1920, 0},
	}
	for _, tt := range tests {
		if got := rowStride(tt.width); got != tt.stride {
			t.Errorf("rowStride(%d) = %d, want %d", tt.width, got, tt.stride)
		}
		if got := rowPadding(tt.width); got != tt.padding {
			t.Errorf("rowPadding(%d) = %d, want %d", tt.width, got, tt.padding)
		}
	}
}

func TestNewHeaders(t *testing.T) {
	fh := newFileHeader(2, 2)
	if fh.FileSize != 70 {
		t.Errorf("FileSize = %d, want 70", fh.FileSize)
	}
	if fh.Reserved1 != 0 || fh.Reserved2 != 0 {
		t.Errorf("reserved fields = %d, %d, want 0, 0", fh.Reserved1, fh.Reserved2)
	}
	if fh.PixelOffset != 54 {
		t.Errorf("PixelOffset = %d, want 54", fh.PixelOffset)
	}

	ih := newInfoHeader(2, 2)
	if ih.HeaderSize != 40 {
		t.Errorf("HeaderSize = %d, want 40", ih.HeaderSize)
	}
	if ih.Width != 2 || ih.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 2x2", ih.Width, ih.Height)
	}
	if ih.Planes != 1 {
		t.Errorf("Planes = %d, want 1", ih.Planes)
	}
	if ih.BitCount != 24 {
		t.Errorf("BitCount = %d, want 24", ih.BitCount)
	}
	if ih.Compression != 0 {
		t.Errorf("Compression = %d, want 0", ih.Compression)
	}
	if ih.DataSize != 16 {
		t.Errorf("DataSize = %d, want 16", ih.DataSize)
	}
	if ih.XPixelsPerM != 0x100 || ih.YPixelsPerM != 0x100 {
		t.Errorf("resolution = %d, %d, want 256, 256", ih.XPixelsPerM, ih.YPixelsPerM)
	}
	if ih.Colors != 0 || ih.ImportantColors != 0 {
		t.Errorf("palette fields = %d, %d, want 0, 0", ih.Colors, ih.ImportantColors)
	}
}
