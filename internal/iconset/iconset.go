// Package iconset renders the application icon at every size a web
// app manifest needs and writes the results to disk.
package iconset

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/fufuok/cmap"

	"github.com/Anoem074/Wheaty/internal/manifest"
	"github.com/Anoem074/Wheaty/pkg/graphics"
)

// Sizes lists the square edge lengths required by the manifest.
var Sizes = []int{72, 96, 128, 144, 152, 192, 384, 512}

// FileName returns the conventional name of one icon file.
func FileName(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}

type Generator struct {
	Icon   *graphics.AppIcon
	OutDir string
	Sizes  []int
}

func NewGenerator(icon *graphics.AppIcon, outDir string) *Generator {
	return &Generator{Icon: icon, OutDir: outDir, Sizes: Sizes}
}

// Generate renders every size and writes one PNG per size into OutDir,
// creating the directory if needed. Renders run concurrently since
// each one only touches its own canvas; files are written in ascending
// size order so output is stable. The first failure aborts the run;
// files already written stay on disk.
func (g *Generator) Generate() ([]string, error) {
	if err := os.MkdirAll(g.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	rendered := cmap.NewOf[string, image.Image]()
	failed := cmap.NewOf[string, error]()
	var wg sync.WaitGroup
	for _, size := range g.Sizes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := g.Icon.Render(size)
			if err != nil {
				failed.Set(FileName(size), err)
				return
			}
			rendered.Set(FileName(size), img)
		}()
	}
	wg.Wait()

	for _, size := range g.Sizes {
		if err, ok := failed.Get(FileName(size)); ok {
			return nil, fmt.Errorf("render %dpx icon: %w", size, err)
		}
	}

	paths := make([]string, 0, len(g.Sizes))
	for _, size := range g.Sizes {
		img, ok := rendered.Get(FileName(size))
		if !ok {
			return nil, fmt.Errorf("render %dpx icon: no result", size)
		}
		p := filepath.Join(g.OutDir, FileName(size))
		if err := writePNG(p, img); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// WriteManifest writes the manifest "icons" fragment for this set.
// srcPrefix is the path prefix the manifest should use for each icon.
func (g *Generator) WriteManifest(filePath, srcPrefix string) error {
	entries := make([]manifest.Icon, 0, len(g.Sizes))
	for _, size := range g.Sizes {
		entries = append(entries, manifest.NewIcon(path.Join(srcPrefix, FileName(size)), size))
	}
	return manifest.Write(filePath, entries)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
