package graphics

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
)

var gold = color.RGBA{255, 215, 0, 255}

func renderRGBA(t *testing.T, a *AppIcon, size int) *image.RGBA {
	t.Helper()
	img, err := a.Render(size)
	if err != nil {
		t.Fatalf("Render(%d): %v", size, err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("Render(%d) returned %T, want *image.RGBA", size, img)
	}
	return rgba
}

func TestRenderSizes(t *testing.T) {
	a := NewAppIcon()
	for _, size := range []int{72, 96, 128, 144, 152, 192, 384, 512} {
		img := renderRGBA(t, a, size)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %dx%d", size, b.Dx(), b.Dy())
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := NewAppIcon()
	first := renderRGBA(t, a, 128)
	second := renderRGBA(t, a, 128)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("two renders of the same size differ")
	}
}

func TestRenderRejectsNonPositiveSize(t *testing.T) {
	a := NewAppIcon()
	for _, size := range []int{0, -5} {
		if _, err := a.Render(size); err == nil {
			t.Errorf("Render(%d): expected error", size)
		}
	}
}

func TestGradientCorners(t *testing.T) {
	a := NewAppIcon()
	const size = 128
	span := 2 * float64(size)

	topLeft := a.gradientAt(0, 0, span)
	if topLeft != (color.RGBA{102, 126, 234, 255}) {
		t.Errorf("gradient at (0,0) = %v, want {102 126 234 255}", topLeft)
	}

	bottomRight := a.gradientAt(size-1, size-1, span)
	if bottomRight.B != 255 {
		t.Errorf("gradient blue at far corner = %d, want clamped 255", bottomRight.B)
	}
	if bottomRight.R <= topLeft.R || bottomRight.G <= topLeft.G {
		t.Errorf("gradient does not increase toward far corner: %v -> %v", topLeft, bottomRight)
	}
}

func TestRenderCenterIsGold(t *testing.T) {
	a := NewAppIcon()
	img := renderRGBA(t, a, 72)
	if got := img.RGBAAt(36, 36); got != gold {
		t.Errorf("center pixel = %v, want %v", got, gold)
	}
}

func TestSunInteriorOpaqueGold(t *testing.T) {
	a := NewAppIcon()
	for _, size := range []int{72, 96, 128, 144, 152, 192, 384, 512} {
		img := renderRGBA(t, a, size)
		center := size / 2
		radius := int(a.SunRadiusRatio * float64(size))
		// sample away from the top-left quadrant, where the highlight sits
		points := []image.Point{
			{center, center},
			{center + radius/2, center},
			{center, center + radius/2},
			{center + radius/2, center + radius/2},
		}
		for _, p := range points {
			if got := img.RGBAAt(p.X, p.Y); got != gold {
				t.Errorf("size %d: sun pixel (%d,%d) = %v, want %v", size, p.X, p.Y, got, gold)
			}
		}
	}
}

func TestRightRayIsGold(t *testing.T) {
	a := NewAppIcon()
	const size = 512
	img := renderRGBA(t, a, size)

	center := size / 2
	radius := int(a.SunRadiusRatio * float64(size))
	length := int(a.RayLengthRatio * float64(size))
	x := center + radius + a.RayGap + length/2
	if got := img.RGBAAt(x, center); got != gold {
		t.Errorf("ray pixel (%d,%d) = %v, want %v", x, center, got, gold)
	}
}

func TestRaysAllDirectionsAllSizes(t *testing.T) {
	a := NewAppIcon()
	for _, size := range []int{72, 96, 128, 144, 152, 192, 384, 512} {
		img := renderRGBA(t, a, size)
		center := size / 2
		sunRadius := int(a.SunRadiusRatio * float64(size))
		inner := float64(sunRadius + a.RayGap)
		outer := float64(sunRadius) + a.RayLengthRatio*float64(size)
		mid := (inner + outer) / 2
		for i, dir := range rayDirections {
			x := center + int(math.Round(mid*dir[0]))
			y := center + int(math.Round(mid*dir[1]))
			if got := img.RGBAAt(x, y); !nearGold(got) {
				t.Errorf("size %d ray %d: pixel (%d,%d) = %v, want ~%v", size, i, x, y, got, gold)
			}
		}
	}
}

// nearGold leaves a little room for the rasterizer's edge coverage on
// the smallest sizes, where a ray is only a few pixels across.
func nearGold(c color.RGBA) bool {
	return absDiff(c.R, gold.R) <= 12 &&
		absDiff(c.G, gold.G) <= 12 &&
		absDiff(c.B, gold.B) <= 12 &&
		c.A == 255
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestGlowDisabled(t *testing.T) {
	a := NewAppIcon()
	a.GlowAlpha = 0
	withGlow := renderRGBA(t, NewAppIcon(), 128)
	withoutGlow := renderRGBA(t, a, 128)
	if bytes.Equal(withGlow.Pix, withoutGlow.Pix) {
		t.Error("glow had no effect on the rendered image")
	}
}

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#667eea")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	want := color.RGBA{102, 126, 234, 255}
	if got != want {
		t.Errorf("ParseHexColor(#667eea) = %v, want %v", got, want)
	}

	if _, err := ParseHexColor("not-a-color"); err == nil {
		t.Error("expected error for invalid hex string")
	}
	if _, err := ParseHexColor("#667eea80"); err == nil {
		t.Error("expected error for 8-digit hex, alpha components are not supported")
	}
}

func TestSetGradientHex(t *testing.T) {
	a := NewAppIcon()
	if err := a.SetGradientHex("#000000", "#ffffff"); err != nil {
		t.Fatalf("SetGradientHex: %v", err)
	}
	if a.GradientStart != [3]float64{0, 0, 0} {
		t.Errorf("GradientStart = %v", a.GradientStart)
	}
	if a.GradientEnd != [3]float64{255, 255, 255} {
		t.Errorf("GradientEnd = %v", a.GradientEnd)
	}

	if err := a.SetGradientHex("bogus", "#ffffff"); err == nil {
		t.Error("expected error for invalid start color")
	}
}

func TestWriteSVG(t *testing.T) {
	a := NewAppIcon()
	var buf bytes.Buffer
	if err := a.WriteSVG(&buf, 512); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Errorf("output does not look like SVG: %.80q", out)
	}

	if err := a.WriteSVG(&buf, 0); err == nil {
		t.Error("expected error for non-positive size")
	}
}
