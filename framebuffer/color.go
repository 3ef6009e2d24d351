package framebuffer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Color is a 24-bit RGB value
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// NewColor builds a Color from its channels
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromHex unpacks a 0x00RRGGBB pixel word, ignoring the top byte
func FromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// ToHex packs the color into a 0x00RRGGBB pixel word
func (c Color) ToHex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// String renders the color as #rrggbb
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor reads a color written as "#rrggbb" or "rrggbb"
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, errors.Errorf("[ParseColor] invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, "[ParseColor] invalid color %q", s)
	}
	return FromHex(uint32(v)), nil
}
