package iconset

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	previewThumbSize = 96
	previewMargin    = 8
)

// WritePreview renders every size again and writes a single contact
// sheet with all of them scaled to a common thumbnail size, largest
// last, for a quick visual check of the whole set.
func (g *Generator) WritePreview(path string) error {
	width := len(g.Sizes)*(previewThumbSize+previewMargin) + previewMargin
	height := previewThumbSize + 2*previewMargin
	sheet := imaging.New(width, height, color.NRGBA{30, 30, 36, 255})

	x := previewMargin
	for _, size := range g.Sizes {
		img, err := g.Icon.Render(size)
		if err != nil {
			return fmt.Errorf("render %dpx preview thumbnail: %w", size, err)
		}
		thumb := imaging.Resize(img, previewThumbSize, previewThumbSize, imaging.Lanczos)
		sheet = imaging.Paste(sheet, thumb, image.Pt(x, previewMargin))
		x += previewThumbSize + previewMargin
	}

	return imaging.Save(sheet, path)
}
