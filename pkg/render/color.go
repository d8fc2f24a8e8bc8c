// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// SceneColors holds the colors a frontend needs to draw the bowling scene.
type SceneColors struct {
	ClearColor color.RGBA
	LaneColor  color.RGBA
	PinColor   color.RGBA
	TextColor  color.RGBA
	ButtonBg   color.RGBA
	ButtonHot  color.RGBA
}

// ParseHex разбирает цвет вида "#RRGGBB" или "#RRGGBBAA".
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustParseHex — как ParseHex, но паникует. Только для констант.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB переводит компоненты 0..1 в color.RGBA
func RGB(r, g, b float64) color.RGBA {
	return color.RGBA{R: unit(r), G: unit(g), B: unit(b), A: 255}
}

func unit(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ShadeColor(c, 0.5)
}

// ShadeColor умножает яркость на factor (0..1)
func ShadeColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
