package bmp

import "strings"

// The sixteen basic HTML colors.
var (
	Black   = Pixel{}
	White   = RGB(255, 255, 255)
	Silver  = RGB(192, 192, 192)
	Gray    = RGB(128, 128, 128)
	Red     = RGB(255, 0, 0)
	Maroon  = RGB(128, 0, 0)
	Lime    = RGB(0, 255, 0)
	Green   = RGB(0, 128, 0)
	Blue    = RGB(0, 0, 255)
	Navy    = RGB(0, 0, 128)
	Yellow  = RGB(255, 255, 0)
	Olive   = RGB(128, 128, 0)
	Cyan    = RGB(0, 255, 255)
	Teal    = RGB(0, 128, 128)
	Magenta = RGB(255, 0, 255)
	Purple  = RGB(128, 0, 128)
)

var colorNames = map[string]Pixel{
	"black":   Black,
	"white":   White,
	"silver":  Silver,
	"gray":    Gray,
	"red":     Red,
	"maroon":  Maroon,
	"lime":    Lime,
	"green":   Green,
	"blue":    Blue,
	"navy":    Navy,
	"yellow":  Yellow,
	"olive":   Olive,
	"cyan":    Cyan,
	"teal":    Teal,
	"magenta": Magenta,
	"purple":  Purple,
}

// Named looks up a color by its HTML name, case-insensitively.
func Named(name string) (Pixel, bool) {
	p, ok := colorNames[strings.ToLower(name)]
	return p, ok
}
