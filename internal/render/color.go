package render

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColor parses #rgb, #rrggbb and #rrggbbaa color strings.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("color %q: missing # prefix", s)
	}
	hex := s[1:]

	var r, g, b, a uint8 = 0, 0, 0, 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r *= 17
		g *= 17
		b *= 17
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("color %q: unsupported length", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// colorOrBlack parses a template color value; malformed values fall back to
// opaque black so a bad color never aborts a render.
func colorOrBlack(s string) color.Color {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.Black
	}
	return c
}
