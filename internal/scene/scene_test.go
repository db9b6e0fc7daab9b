package scene

import (
	"errors"
	"testing"

	"github.com/davesmith10/bmpio/bmp"
)

const testScene = `
width: 4
height: 3
background:
  name: navy
rects:
  - {x: 1, y: 1, w: 2, h: 1, color: {name: yellow}}
pixels:
  - {x: 0, y: 0, color: {r: 10, g: 20, b: 30}}
`

func TestRender(t *testing.T) {
	s, err := Parse([]byte(testScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	img, err := s.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", img.Width(), img.Height())
	}

	tests := []struct {
		x, y int
		want bmp.Pixel
	}{
		{0, 0, bmp.RGB(10, 20, 30)}, // explicit pixel over background
		{1, 1, bmp.Yellow},
		{2, 1, bmp.Yellow},
		{3, 1, bmp.Navy},
		{3, 2, bmp.Navy},
	}
	for _, tt := range tests {
		p, err := img.GetPixel(tt.x, tt.y)
		if err != nil {
			t.Fatalf("GetPixel(%d, %d): %v", tt.x, tt.y, err)
		}
		if p != tt.want {
			t.Errorf("pixel (%d, %d) = %+v, want %+v", tt.x, tt.y, p, tt.want)
		}
	}
}

func TestRenderUnknownColorName(t *testing.T) {
	s, err := Parse([]byte("width: 2\nheight: 2\nbackground: {name: blurple}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := s.Render(); err == nil {
		t.Fatal("Render succeeded with an unknown color name")
	}
}

func TestRenderRectOutsideCanvas(t *testing.T) {
	s, err := Parse([]byte("width: 2\nheight: 2\nrects:\n  - {x: 1, y: 1, w: 4, h: 1, color: {name: red}}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = s.Render()
	var oob *bmp.OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("Render = %v, want OutOfBoundsError", err)
	}
}

func TestRenderBadDimensions(t *testing.T) {
	s, err := Parse([]byte("width: 0\nheight: 3\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := s.Render(); err == nil {
		t.Fatal("Render succeeded with zero width")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("width: [oops\n")); err == nil {
		t.Fatal("Parse succeeded on invalid YAML")
	}
}
