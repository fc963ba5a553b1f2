package maze

import (
	"image/color"
	"strings"
)

// Common colors. Gray and LightGray are the standard grays; cell walls use
// colors one step away from them.
var (
	White     = RGB(255, 255, 255)
	Black     = RGB(0, 0, 0)
	Red       = RGB(255, 0, 0)
	Green     = RGB(0, 255, 0)
	Blue      = RGB(0, 0, 255)
	Yellow    = RGB(255, 255, 0)
	Cyan      = RGB(0, 255, 255)
	Magenta   = RGB(255, 0, 255)
	Orange    = RGB(255, 200, 0)
	Pink      = RGB(255, 175, 175)
	Gray      = RGB(128, 128, 128)
	LightGray = RGB(192, 192, 192)
	DarkGray  = RGB(64, 64, 64)
)

// CaptionColor is the default caption text color (crimson).
var CaptionColor = RGB(220, 20, 60)

var namedColors = map[string]color.RGBA{
	"white":     White,
	"black":     Black,
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"yellow":    Yellow,
	"cyan":      Cyan,
	"magenta":   Magenta,
	"orange":    Orange,
	"pink":      Pink,
	"gray":      Gray,
	"lightgray": LightGray,
	"darkgray":  DarkGray,
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex creates an opaque color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// ok is false for anything else.
func Hex(hex string) (c color.RGBA, ok bool) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint32
	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	}
	if !ok {
		return Black, false
	}
	//nolint:gosec // G115: at most two hex digits per channel
	return RGB(uint8(r), uint8(g), uint8(b)), true
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// ParseColor returns the color for a palette name such as "red" or
// "lightgray", or for a hex string.
func ParseColor(s string) (color.RGBA, bool) {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	if c, ok := namedColors[name]; ok {
		return c, true
	}
	return Hex(strings.TrimSpace(s))
}

// opaque converts c to an opaque color.RGBA, dropping alpha.
func opaque(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(n.R, n.G, n.B)
}
