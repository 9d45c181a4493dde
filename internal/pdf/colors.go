// Package pdf produces vector PDF exports of resume data. Each screen
// template has a drawing counterpart here that mirrors the shared
// section-inclusion rules; only the drawing differs.
package pdf

import (
	"fmt"
	"strings"
)

// RGB is a color with 0-255 channels, the only color model the PDF engine
// understands.
type RGB struct {
	R, G, B int
}

// ParseHex parses a #rgb or #rrggbb color string. The leading "#" is optional.
func ParseHex(value string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
		// already expanded
	default:
		return RGB{}, fmt.Errorf("invalid hex color %q", value)
	}

	var c RGB
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", value, err)
	}
	return c, nil
}

// ParseHexOr parses value, returning fallback when it is empty or malformed.
// Render sites use this so a bad stored color degrades instead of failing the
// whole export.
func ParseHexOr(value string, fallback RGB) RGB {
	c, err := ParseHex(value)
	if err != nil {
		return fallback
	}
	return c
}

// BlendTowardWhite lerps each channel toward 255 by fraction (0 keeps the
// color, 1 yields white). Muted text tones are derived this way from the
// configured text color rather than being independently configurable.
func BlendTowardWhite(c RGB, fraction float64) RGB {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	blend := func(ch int) int {
		return int(float64(ch) + (255-float64(ch))*fraction + 0.5)
	}
	return RGB{R: blend(c.R), G: blend(c.G), B: blend(c.B)}
}

// The two muted tiers derived from the body text color.
const (
	mutedBlend = 0.35
	faintBlend = 0.60
)

// Muted returns the mid-tone variant of c used for sub-headlines.
func Muted(c RGB) RGB { return BlendTowardWhite(c, mutedBlend) }

// Faint returns the lightest variant of c used for date labels.
func Faint(c RGB) RGB { return BlendTowardWhite(c, faintBlend) }
