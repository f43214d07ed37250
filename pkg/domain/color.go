package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one entry of the fixed six-color palette.
type Color uint8

// Palette, in switch/index order.
const (
	Red Color = iota
	Green
	Blue
	Cyan
	Magenta
	Yellow
)

// PaletteSize is the number of playable colors.
const PaletteSize = 6

var colorNames = [PaletteSize]string{"red", "green", "blue", "cyan", "magenta", "yellow"}

// RGB565 values of the framebuffer palette.
var rgb565 = [PaletteSize]uint16{0xF800, 0x07E0, 0x001F, 0x07FF, 0xF81F, 0xFFE0}

// Palette returns every playable color in index order.
func Palette() []Color {
	p := make([]Color, PaletteSize)
	for i := range p {
		p[i] = Color(i)
	}
	return p
}

// Valid reports whether c belongs to the palette.
func (c Color) Valid() bool {
	return c < PaletteSize
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Index returns the 0..5 choice index of the color.
func (c Color) Index() int {
	return int(c)
}

// RGB565 returns the 16-bit framebuffer encoding of the color.
func (c Color) RGB565() uint16 {
	if !c.Valid() {
		return 0
	}
	return rgb565[c]
}

// Hex expands the RGB565 value to a #rrggbb string for true-color terminals.
func (c Color) Hex() string {
	v := c.RGB565()
	r := uint8((v >> 11) & 0x1F)
	g := uint8((v >> 5) & 0x3F)
	b := uint8(v & 0x1F)
	// replicate high bits into the low ones so 0x1F maps to 0xFF
	r = r<<3 | r>>2
	g = g<<2 | g>>4
	b = b<<3 | b>>2
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ColorFromIndex converts a submitted choice index into a Color.
func ColorFromIndex(i int) (Color, error) {
	if i < 0 || i >= PaletteSize {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidColor, i)
	}
	return Color(i), nil
}

// ColorFromSwitches decodes a switch-register bitmask: the lowest set bit among
// the first PaletteSize switches selects the color, and no set bit means color 0.
func ColorFromSwitches(mask uint32) Color {
	for i := 0; i < PaletteSize; i++ {
		if mask&(1<<i) != 0 {
			return Color(i)
		}
	}
	return Red
}

// ParseColor accepts a choice index ("3"), a color name ("cyan") or the
// first letter of a name ("c").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty choice", ErrInvalidColor)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return ColorFromIndex(n)
	}
	for i, name := range colorNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}
