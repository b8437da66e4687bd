package render

import (
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/width"
)

// ColorDepth classifies how many distinct colors a terminal can show,
// mirroring termraw.ColorDepth without importing it (render sits below
// the terminal-integration layer in the dependency graph).
type ColorDepth int

const (
	DepthNone ColorDepth = iota
	Depth16
	Depth256
	DepthTruecolor
)

// Downgrade adapts c to fit within depth, so a theme authored in full
// RGB still renders sensibly on a 256-color or 16-color terminal.
// Truecolor and indexed colors pass through unchanged; default colors
// always pass through.
func Downgrade(c Color, depth ColorDepth) Color {
	if c.IsDefault() || c.Indexed {
		return c
	}
	switch depth {
	case DepthTruecolor:
		return c
	case Depth256:
		return nearest256(c)
	case Depth16:
		return nearest16(c)
	default:
		return ColorDefault
	}
}

// nearest256 finds the closest xterm-256 palette entry to c by
// perceptual (CIE Lab) distance, so hue relationships in a theme
// survive the downgrade better than a naive per-channel quantization.
func nearest256(c Color) Color {
	target, ok := colorful.MakeColor(colorToStdColor(c))
	if !ok {
		return c
	}
	best := 0
	bestDist := -1.0
	for i, p := range xterm256Palette {
		pc, ok := colorful.MakeColor(colorToStdColor(p))
		if !ok {
			continue
		}
		d := target.DistanceLab(pc)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return ColorFromIndex(uint8(best))
}

// nearest16 downgrades further, to the 16-color ANSI palette.
func nearest16(c Color) Color {
	target, ok := colorful.MakeColor(colorToStdColor(c))
	if !ok {
		return c
	}
	best := 0
	bestDist := -1.0
	for i, p := range ansi16Palette {
		pc, ok := colorful.MakeColor(colorToStdColor(p))
		if !ok {
			continue
		}
		d := target.DistanceLab(pc)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return ColorFromIndex(uint8(best))
}

// RuneDisplayWidth returns the column width of r, consulting
// x/text/width's East Asian width tables when eastAsian is true so
// CJK and fullwidth forms occupy two columns; otherwise it falls back
// to the package's ambiguous-width-unaware RuneWidth.
func RuneDisplayWidth(r rune, eastAsian bool) int {
	if !eastAsian {
		return RuneWidth(r)
	}
	p := width.LookupRune(r)
	switch p.Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous:
		return 2
	default:
		return RuneWidth(r)
	}
}

var ansi16Palette = [16]Color{
	{R: 0, G: 0, B: 0}, {R: 205, G: 0, B: 0}, {R: 0, G: 205, B: 0}, {R: 205, G: 205, B: 0},
	{R: 0, G: 0, B: 238}, {R: 205, G: 0, B: 205}, {R: 0, G: 205, B: 205}, {R: 229, G: 229, B: 229},
	{R: 127, G: 127, B: 127}, {R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 255, G: 255, B: 0},
	{R: 92, G: 92, B: 255}, {R: 255, G: 0, B: 255}, {R: 0, G: 255, B: 255}, {R: 255, G: 255, B: 255},
}

// xterm256Palette holds the 216-color cube plus grayscale ramp of the
// standard xterm 256-color palette (indices 16-255); the first 16
// reuse ansi16Palette.
var xterm256Palette = buildXterm256Palette()

func buildXterm256Palette() [256]Color {
	var p [256]Color
	copy(p[:16], ansi16Palette[:])

	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[idx] = Color{R: steps[r], G: steps[g], B: steps[b]}
				idx++
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		p[232+i] = Color{R: v, G: v, B: v}
	}
	return p
}

func colorToStdColor(c Color) stdColor { return stdColor{c.R, c.G, c.B} }

// stdColor satisfies image/color.Color with the minimum go-colorful
// needs, avoiding a dependency on the image/color package for three
// uint8 fields.
type stdColor struct{ r, g, b uint8 }

func (c stdColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r) * 0x101
	g = uint32(c.g) * 0x101
	b = uint32(c.b) * 0x101
	a = 0xffff
	return
}
