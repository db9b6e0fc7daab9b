package bmp

const (
	fileIDLen     = 2
	fileHeaderLen = 12
	infoHeaderLen = 40

	// headerLen is the pixel array offset written by this codec:
	// identifier + file header + info header.
	headerLen = fileIDLen + fileHeaderLen + infoHeaderLen
)

// fileID is the two-byte bitmap identifier, ASCII "BM".
var fileID = [fileIDLen]byte{0x42, 0x4D}

// FileHeader is the BITMAPFILEHEADER without the leading two identifier
// bytes: the total file size, two reserved fields, and the offset from the
// start of the file to the pixel array.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type FileHeader struct {
	FileSize    uint32 // The size, in bytes, of the bitmap file.
	Reserved1   uint16 // Reserved; must be zero.
	Reserved2   uint16 // Reserved; must be zero.
	PixelOffset uint32 // Offset, in bytes, to the pixel array.
}

// InfoHeader is the BITMAPINFOHEADER: the dimensions and color format of
// the pixel array. This codec reads and writes the 40-byte variant only.
type InfoHeader struct {
	HeaderSize      uint32 // The number of bytes required by the structure (40).
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels.
	Planes          uint16 // The number of planes for the target device (1).
	BitCount        uint16 // The number of bits per pixel (24).
	Compression     uint32 // The type of compression (0, uncompressed).
	DataSize        uint32 // The size of the pixel array, in bytes.
	XPixelsPerM     int32  // Horizontal resolution, in pixels per meter.
	YPixelsPerM     int32  // Vertical resolution, in pixels per meter.
	Colors          uint32 // Number of palette colors used (0, no palette).
	ImportantColors uint32 // Number of palette colors required (0).
}

func newFileHeader(width, height int) FileHeader {
	return FileHeader{
		FileSize:    uint32(headerLen + rowStride(width)*height),
		PixelOffset: headerLen,
	}
}

func newInfoHeader(width, height int) InfoHeader {
	return InfoHeader{
		HeaderSize:  infoHeaderLen,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    24,
		DataSize:    uint32(rowStride(width) * height),
		XPixelsPerM: 0x100,
		YPixelsPerM: 0x100,
	}
}

// rowStride returns the total bytes per row at 24 bits per pixel, padded to
// a 4-byte boundary.
func rowStride(width int) int {
	return ((24*width + 31) / 32) * 4
}

// rowPadding returns the zero bytes appended to each row after the BGR
// triplets to reach the stride boundary.
func rowPadding(width int) int {
	return rowStride(width) - width*3
}
