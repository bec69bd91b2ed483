package theme

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Darkened cells keep at least this much of each channel so they stay
// visible on a dark background.
const (
	darkenFactor = 0.5
	darkenFloor  = 40.0 / 255
)

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// darkenColor halves a cell color's brightness for dark backgrounds.
// Unparseable input is returned unchanged.
func darkenColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	c = c.BlendRgb(colorful.Color{}, 1-darkenFactor)
	c.R = math.Max(c.R, darkenFloor)
	c.G = math.Max(c.G, darkenFloor)
	c.B = math.Max(c.B, darkenFloor)
	return c.Hex()
}

func blendColors(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	ratio = math.Min(math.Max(ratio, 0), 1)
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}

// chooseTextColor returns whichever candidate has the higher WCAG contrast on bg.
func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1, l2 := relativeLuminance(a), relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
