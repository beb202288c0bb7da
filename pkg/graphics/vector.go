package graphics

import (
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	svgrenderer "github.com/tdewolff/canvas/renderers/svg"
)

// WriteSVG writes a scalable version of the icon, for maskable and
// any-size manifest entries. The motif matches Render; the gradient is
// a two-stop linear gradient between the (clamped) ramp endpoints, so
// pixel values differ slightly from the raster output where the raster
// ramp saturates early.
func (a *AppIcon) WriteSVG(w io.Writer, size int) error {
	if size <= 0 {
		return fmt.Errorf("size must be positive, got %d", size)
	}
	s := float64(size)
	c := canvas.New(s, s)
	ctx := canvas.NewContext(c)

	// canvas puts the origin bottom-left, so the gradient runs from the
	// top-left corner down to the bottom-right one.
	gradient := canvas.NewLinearGradient(canvas.Point{X: 0, Y: s}, canvas.Point{X: s, Y: 0})
	gradient.Add(0, rampColor(a.GradientStart))
	gradient.Add(1, rampColor(a.GradientEnd))
	ctx.SetFillGradient(gradient)
	ctx.DrawPath(0, 0, canvas.Rectangle(s, s))

	ctx.SetFillColor(color.NRGBA{255, 255, 255, a.GlassAlpha})
	ctx.DrawPath(0, 0, canvas.Rectangle(s, s))

	center := s / 2
	sunRadius := a.SunRadiusRatio * s

	ctx.SetFillColor(a.SunColor)
	ctx.DrawPath(center, center, canvas.Circle(sunRadius))

	rayLength := a.RayLengthRatio * s
	rayWidth := max(2, s/64)
	inner := sunRadius + float64(a.RayGap)
	outer := sunRadius + rayLength
	if outer-inner < 1 {
		// same degenerate-ray fallback as the raster renderer
		ctx.SetFillColor(a.SunColor)
		mid := (inner + outer) / 2
		for _, dir := range rayDirections {
			ctx.DrawPath(center+mid*dir[0], center-mid*dir[1], canvas.Circle(rayWidth))
		}
	} else {
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(a.SunColor)
		ctx.SetStrokeWidth(rayWidth)
		for _, dir := range rayDirections {
			ray := &canvas.Path{}
			ray.MoveTo(center+inner*dir[0], center-inner*dir[1])
			ray.LineTo(center+outer*dir[0], center-outer*dir[1])
			ctx.DrawPath(0, 0, ray)
		}
		ctx.SetStrokeColor(canvas.Transparent)
	}

	highlightRadius := 0.08 * s / 2
	offset := 0.7 * sunRadius
	ctx.SetFillColor(color.NRGBA{255, 255, 255, a.HighlightAlpha})
	ctx.DrawPath(
		center-offset+highlightRadius,
		center+offset-highlightRadius,
		canvas.Ellipse(highlightRadius, highlightRadius),
	)

	renderer := svgrenderer.New(w, s, s, nil)
	c.RenderTo(renderer)
	return renderer.Close()
}

func rampColor(ramp [3]float64) color.RGBA {
	return color.RGBA{R: clamp8(ramp[0]), G: clamp8(ramp[1]), B: clamp8(ramp[2]), A: 255}
}
