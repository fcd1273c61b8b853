package render

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is one of the 16 standard terminal palette entries.
//
// The numeric value is the palette index, so terminal sinks can map it to SGR
// codes or tcell palette colors directly.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// DefaultClearColor is used when a frame is cleared without an explicit color.
const DefaultClearColor = Black

var colorNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// xterm default palette.
var colorRGB = [...]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF},
	{0xCD, 0x00, 0x00, 0xFF},
	{0x00, 0xCD, 0x00, 0xFF},
	{0xCD, 0xCD, 0x00, 0xFF},
	{0x00, 0x00, 0xEE, 0xFF},
	{0xCD, 0x00, 0xCD, 0xFF},
	{0x00, 0xCD, 0xCD, 0xFF},
	{0xE5, 0xE5, 0xE5, 0xFF},
	{0x7F, 0x7F, 0x7F, 0xFF},
	{0xFF, 0x00, 0x00, 0xFF},
	{0x00, 0xFF, 0x00, 0xFF},
	{0xFF, 0xFF, 0x00, 0xFF},
	{0x5C, 0x5C, 0xFF, 0xFF},
	{0xFF, 0x00, 0xFF, 0xFF},
	{0x00, 0xFF, 0xFF, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF},
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// RGBA returns the palette entry as an opaque 8-bit color.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(colorRGB) {
		return colorRGB[c]
	}
	return colorRGB[White]
}

// Bright reports whether c is in the upper half of the palette.
func (c Color) Bright() bool { return c >= BrightBlack && c <= BrightWhite }

// ParseColor accepts the names returned by String. Underscores and spaces are
// treated like dashes, and "gray"/"grey" map to bright-black.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "-", " ", "-").Replace(n)
	switch n {
	case "gray", "grey":
		return BrightBlack, nil
	}
	for i, s := range colorNames {
		if s == n {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}
