// Package scene builds bitmaps from YAML scene descriptions.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/davesmith10/bmpio/bmp"
)

// Scene describes a bitmap to compose: canvas dimensions, an optional
// background fill, and shapes drawn in order on top of it.
type Scene struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Background *Color  `yaml:"background,omitempty"`
	Rects      []Rect  `yaml:"rects,omitempty"`
	Pixels     []Point `yaml:"pixels,omitempty"`
}

// Color is either an HTML color name or explicit channels. A non-empty
// name takes precedence.
type Color struct {
	Name string `yaml:"name,omitempty"`
	R    uint8  `yaml:"r,omitempty"`
	G    uint8  `yaml:"g,omitempty"`
	B    uint8  `yaml:"b,omitempty"`
}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	X     int   `yaml:"x"`
	Y     int   `yaml:"y"`
	W     int   `yaml:"w"`
	H     int   `yaml:"h"`
	Color Color `yaml:"color"`
}

// Point is a single pixel.
type Point struct {
	X     int   `yaml:"x"`
	Y     int   `yaml:"y"`
	Color Color `yaml:"color"`
}

func (c Color) pixel() (bmp.Pixel, error) {
	if c.Name != "" {
		p, ok := bmp.Named(c.Name)
		if !ok {
			return bmp.Pixel{}, fmt.Errorf("unknown color name %q", c.Name)
		}
		return p, nil
	}
	return bmp.RGB(c.R, c.G, c.B), nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML scene description.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &s, nil
}

// Render composes the scene into a fresh image. Shapes that extend past
// the canvas surface the codec's out-of-bounds error.
func (s *Scene) Render() (*bmp.Image, error) {
	img, err := bmp.New(s.Width, s.Height)
	if err != nil {
		return nil, err
	}

	if s.Background != nil {
		p, err := s.Background.pixel()
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				if err := img.SetPixel(x, y, p); err != nil {
					return nil, err
				}
			}
		}
	}

	for i, r := range s.Rects {
		p, err := r.Color.pixel()
		if err != nil {
			return nil, fmt.Errorf("rect %d: %w", i, err)
		}
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				if err := img.SetPixel(x, y, p); err != nil {
					return nil, fmt.Errorf("rect %d: %w", i, err)
				}
			}
		}
	}

	for i, pt := range s.Pixels {
		p, err := pt.Color.pixel()
		if err != nil {
			return nil, fmt.Errorf("pixel %d: %w", i, err)
		}
		if err := img.SetPixel(pt.X, pt.Y, p); err != nil {
			return nil, fmt.Errorf("pixel %d: %w", i, err)
		}
	}

	return img, nil
}
