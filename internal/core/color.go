package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 16-bit RGB565 pixel value, the native format of small LCD panels.
type Color uint16

// Predefined colors for scene layers and text.
const (
	ColorBlack   Color = 0x0000
	ColorWhite   Color = 0xFFFF
	ColorRed     Color = 0xF800
	ColorGreen   Color = 0x07E0
	ColorBlue    Color = 0x001F
	ColorYellow  Color = 0xFFE0
	ColorCyan    Color = 0x07FF
	ColorMagenta Color = 0xF81F
	ColorOrange  Color = 0xFD20
	ColorGray    Color = 0x8410
)

var colorNames = map[string]Color{
	"black":   ColorBlack,
	"white":   ColorWhite,
	"red":     ColorRed,
	"green":   ColorGreen,
	"blue":    ColorBlue,
	"yellow":  ColorYellow,
	"cyan":    ColorCyan,
	"magenta": ColorMagenta,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"grey":    ColorGray,
}

// RGB565 packs 8-bit channels into a Color, dropping the low bits.
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB expands the color to 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c >> 11 & 0x1F)
	g6 := uint8(c >> 5 & 0x3F)
	b5 := uint8(c & 0x1F)
	// replicate high bits into the low bits so white stays 0xFF
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String returns the palette name when there is one, otherwise the hex form.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c && name != "grey" {
			return name
		}
	}
	return c.Hex()
}

// ParseColor accepts a palette name ("red") or a "#rrggbb" literal.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("core: invalid color %q: %w", s, err)
		}
		return RGB565(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return 0, fmt.Errorf("core: unknown color %q", s)
}
