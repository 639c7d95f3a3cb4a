package rich

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit per channel RGBA color. It implements image/color.Color
// so it can be handed to any library that accepts one.
type Color struct {
	R, G, B, A uint8
}

// Named colors
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	DarkGray    = RGB(96, 96, 96)
	Gray        = RGB(160, 160, 160)
	LightGray   = RGB(220, 220, 220)
	White       = RGB(255, 255, 255)

	Brown    = RGB(165, 42, 42)
	DarkRed  = RGB(0x8B, 0, 0)
	Red      = RGB(255, 0, 0)
	LightRed = RGB(255, 128, 128)

	Yellow      = RGB(255, 255, 0)
	LightYellow = RGB(255, 255, 0xE0)
	Khaki       = RGB(240, 230, 140)

	DarkGreen  = RGB(0, 0x64, 0)
	Green      = RGB(0, 255, 0)
	LightGreen = RGB(0x90, 0xEE, 0x90)

	DarkBlue  = RGB(0, 0, 0x8B)
	Blue      = RGB(0, 0, 255)
	LightBlue = RGB(0xAD, 0xD8, 0xE6)

	Gold = RGB(255, 215, 0)
)

// RGB returns an opaque color
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with an explicit alpha channel
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color, and
// "#rrggbbaa" (the form String prints for translucent colors) with alpha
func ParseHex(s string) (Color, error) {
	alpha, hex := uint8(255), s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = s[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA(r, g, b, alpha), nil
}

// Hex returns the color as "#rrggbb", ignoring alpha
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// RGBA implements image/color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return
}

// String returns "#rrggbb" for opaque colors and "#rrggbbaa" otherwise
func (c Color) String() string {
	if c.A == 255 {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), c.A)
}

// OptionalColor is a color that may be unset. The zero value is unset.
type OptionalColor struct {
	Color Color
	Valid bool
}

// Some wraps a color as a set OptionalColor
func Some(c Color) OptionalColor {
	return OptionalColor{Color: c, Valid: true}
}

// Get returns the color and whether it is set
func (o OptionalColor) Get() (Color, bool) {
	return o.Color, o.Valid
}

// Or returns o if it is set, otherwise base
func (o OptionalColor) Or(base OptionalColor) OptionalColor {
	if o.Valid {
		return o
	}
	return base
}

// OrElse returns the color if set, otherwise def
func (o OptionalColor) OrElse(def Color) Color {
	if o.Valid {
		return o.Color
	}
	return def
}
