package graphics

import (
	"fmt"
	"image/color"

	"github.com/go-playground/colors"
)

// ParseHexColor converts a "#rrggbb" (or short "#rgb") string to an
// opaque color.RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	hex, err := colors.ParseHEX(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	rgba := hex.ToRGBA()
	return color.RGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(rgba.A * 255)}, nil
}

// SetGradientHex replaces both gradient ramp endpoints. Unlike the
// built-in ramp, hex endpoints cannot exceed 255, so no channel
// saturates before the far corner.
func (a *AppIcon) SetGradientHex(start, end string) error {
	s, err := ParseHexColor(start)
	if err != nil {
		return err
	}
	e, err := ParseHexColor(end)
	if err != nil {
		return err
	}
	a.GradientStart = [3]float64{float64(s.R), float64(s.G), float64(s.B)}
	a.GradientEnd = [3]float64{float64(e.R), float64(e.G), float64(e.B)}
	return nil
}

// SetSunHex replaces the sun, ray and glow color.
func (a *AppIcon) SetSunHex(hex string) error {
	c, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	a.SunColor = c
	return nil
}
