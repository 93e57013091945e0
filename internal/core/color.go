package core

import colorful "github.com/lucasb-eyer/go-colorful"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorTeal
	ColorSky
)

// palette holds the approximate RGB appearance of each named color.
// ColorDefault is absent so it is never chosen by NearestColor.
var palette = map[Color]colorful.Color{
	ColorRed:           {R: 0.80, G: 0.00, B: 0.00},
	ColorGreen:         {R: 0.00, G: 0.80, B: 0.00},
	ColorYellow:        {R: 0.80, G: 0.80, B: 0.00},
	ColorBlue:          {R: 0.00, G: 0.00, B: 0.93},
	ColorMagenta:       {R: 0.80, G: 0.00, B: 0.80},
	ColorCyan:          {R: 0.00, G: 0.80, B: 0.80},
	ColorWhite:         {R: 0.90, G: 0.90, B: 0.90},
	ColorBrightRed:     {R: 1.00, G: 0.00, B: 0.00},
	ColorBrightGreen:   {R: 0.00, G: 1.00, B: 0.00},
	ColorBrightYellow:  {R: 1.00, G: 1.00, B: 0.00},
	ColorBrightBlue:    {R: 0.36, G: 0.36, B: 1.00},
	ColorBrightMagenta: {R: 1.00, G: 0.00, B: 1.00},
	ColorBrightCyan:    {R: 0.00, G: 1.00, B: 1.00},
	ColorBrightWhite:   {R: 1.00, G: 1.00, B: 1.00},
	ColorOrange:        {R: 1.00, G: 0.53, B: 0.00},
	ColorGray:          {R: 0.54, G: 0.54, B: 0.54},
	ColorTeal:          {R: 0.37, G: 0.69, B: 0.84},
	ColorSky:           {R: 0.00, G: 0.69, B: 1.00},
}

// NearestColor maps an RGB triple with components in [0,1] to the closest
// palette color, measured in CIE L*a*b* space.
func NearestColor(r, g, b float64) Color {
	want := colorful.Color{R: r, G: g, B: b}.Clamped()

	best := ColorWhite
	bestDist := -1.0
	// Iterate in enum order so ties resolve deterministically.
	for c := ColorRed; c <= ColorSky; c++ {
		have, ok := palette[c]
		if !ok {
			continue
		}
		d := want.DistanceLab(have)
		if bestDist < 0 || d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
