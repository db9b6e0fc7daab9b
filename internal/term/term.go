// Package term renders bitmaps as ANSI truecolor blocks.
package term

import (
	"fmt"
	"io"

	"github.com/davesmith10/bmpio/bmp"
)

// Block returns s on a truecolor background of the given channels.
func Block(s string, r, g, b uint8) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", r, g, b, s)
}

// Render writes the image to w, two columns per pixel so cells come out
// roughly square. Intended for small images.
func Render(w io.Writer, img *bmp.Image) error {
	if !img.HasPixelData() {
		return bmp.ErrNoPixelData
	}
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			p, err := img.GetPixel(x, y)
			if err != nil {
				return err
			}
			fmt.Fprint(w, Block("  ", p.R, p.G, p.B))
		}
		fmt.Fprintln(w)
	}
	return nil
}
