package graphics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/esimov/stackblur-go"
	"github.com/fogleman/gg"
)

// cos(45°), matching the fixed constant used for the diagonal rays.
const rayDiagonal = 0.70711

// rayDirections holds the unit vector of each ray, starting at the
// rightward ray and going clockwise in screen coordinates (y down).
var rayDirections = [8][2]float64{
	{1, 0},
	{rayDiagonal, rayDiagonal},
	{0, 1},
	{-rayDiagonal, rayDiagonal},
	{-1, 0},
	{-rayDiagonal, -rayDiagonal},
	{0, -1},
	{rayDiagonal, -rayDiagonal},
}

// AppIcon renders the Wheaty application icon: a gold sun with eight
// rays over a diagonal gradient, finished with a glass overlay and a
// specular highlight. Render is a pure function of the struct fields
// and the requested size.
type AppIcon struct {
	// Channel ramps of the background gradient, evaluated per pixel at
	// t = (x+y)/(2N). End values may exceed 255 and are clamped per
	// pixel after interpolation.
	GradientStart [3]float64
	GradientEnd   [3]float64

	SunColor       color.RGBA
	SunRadiusRatio float64 // sun radius as a fraction of the edge length
	RayLengthRatio float64 // ray length as a fraction of the edge length
	RayGap         int     // pixels between the sun edge and a ray's start

	GlassAlpha     uint8 // alpha of the uniform white overlay
	HighlightAlpha uint8 // alpha of the specular highlight
	GlowAlpha      uint8 // alpha of the blurred glow behind the sun, 0 disables it
}

func NewAppIcon() *AppIcon {
	a := &AppIcon{}
	a.GradientStart = [3]float64{102, 126, 234}
	a.GradientEnd = [3]float64{220, 172, 258}
	a.SunColor = color.RGBA{255, 215, 0, 255}
	a.SunRadiusRatio = 0.23
	a.RayLengthRatio = 0.15
	a.RayGap = 10
	a.GlassAlpha = 25
	a.HighlightAlpha = 80
	a.GlowAlpha = 90
	return a
}

// Render produces the icon at the given edge length. Sizes below ~16
// yield degenerate but valid geometry.
func (a *AppIcon) Render(size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d", size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	a.paintGradient(img, size)

	dc := gg.NewContextForRGBA(img)

	// glass overlay
	dc.SetColor(color.NRGBA{255, 255, 255, a.GlassAlpha})
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	center := size / 2
	sunRadius := int(a.SunRadiusRatio * float64(size))

	if a.GlowAlpha > 0 {
		glow, err := a.renderGlow(size, center, sunRadius)
		if err != nil {
			return nil, err
		}
		draw.Draw(img, img.Bounds(), glow, image.Point{}, draw.Over)
	}

	// sun disc
	dc.SetColor(a.SunColor)
	dc.DrawCircle(float64(center), float64(center), float64(sunRadius))
	dc.Fill()

	a.drawRays(dc, size, center, sunRadius)

	// specular highlight, offset up and left from the sun's center
	highlightSize := int(0.08 * float64(size))
	hx := center - int(0.7*float64(sunRadius))
	hy := center - int(0.7*float64(sunRadius))
	dc.SetColor(color.NRGBA{255, 255, 255, a.HighlightAlpha})
	dc.DrawEllipse(
		float64(hx)+float64(highlightSize)/2,
		float64(hy)+float64(highlightSize)/2,
		float64(highlightSize)/2,
		float64(highlightSize)/2,
	)
	dc.Fill()

	return img, nil
}

func (a *AppIcon) drawRays(dc *gg.Context, size, center, sunRadius int) {
	// Ray length stays in float64: truncating it would cancel against
	// RayGap at 72px and collapse every ray to a zero-length segment.
	rayLength := a.RayLengthRatio * float64(size)
	rayWidth := max(2, size/64)
	inner := float64(sunRadius + a.RayGap)
	outer := float64(sunRadius) + rayLength
	cx, cy := float64(center), float64(center)

	dc.SetColor(a.SunColor)

	if outer-inner < 1 {
		// The gap nearly swallows the ray at small sizes and a subpixel
		// stroke vanishes under anti-aliasing; draw a round dot per ray.
		mid := (inner + outer) / 2
		for _, dir := range rayDirections {
			dc.DrawCircle(cx+mid*dir[0], cy+mid*dir[1], float64(rayWidth))
		}
		dc.Fill()
		return
	}

	dc.SetLineWidth(float64(rayWidth))
	for _, dir := range rayDirections {
		dc.DrawLine(cx+inner*dir[0], cy+inner*dir[1], cx+outer*dir[0], cy+outer*dir[1])
	}
	dc.Stroke()
}

func (a *AppIcon) paintGradient(img *image.RGBA, size int) {
	span := 2 * float64(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, a.gradientAt(x, y, span))
		}
	}
}

// gradientAt evaluates the background ramp at one pixel. Channels are
// clamped to 255; the default blue ramp intentionally tops out above
// that, saturating near the bottom-right corner.
func (a *AppIcon) gradientAt(x, y int, span float64) color.RGBA {
	t := float64(x+y) / span
	return color.RGBA{
		R: clamp8(a.GradientStart[0] + t*(a.GradientEnd[0]-a.GradientStart[0])),
		G: clamp8(a.GradientStart[1] + t*(a.GradientEnd[1]-a.GradientStart[1])),
		B: clamp8(a.GradientStart[2] + t*(a.GradientEnd[2]-a.GradientStart[2])),
		A: 255,
	}
}

// renderGlow draws a translucent disc slightly larger than the sun on
// a transparent layer and stack-blurs it.
func (a *AppIcon) renderGlow(size, center, sunRadius int) (image.Image, error) {
	layer := gg.NewContext(size, size)
	layer.SetColor(color.NRGBA{a.SunColor.R, a.SunColor.G, a.SunColor.B, a.GlowAlpha})
	layer.DrawCircle(float64(center), float64(center), 1.35*float64(sunRadius))
	layer.Fill()

	radius := uint32(max(4, size/24))
	blurred, err := stackblur.Process(layer.Image(), radius)
	if err != nil {
		return nil, fmt.Errorf("blur glow layer: %w", err)
	}
	return blurred, nil
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
