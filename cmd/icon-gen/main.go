package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/Anoem074/Wheaty/internal/iconset"
	"github.com/Anoem074/Wheaty/pkg/graphics"
)

func main() {
	var (
		outDir      = flag.String("out", "icons", "output directory for the generated icons")
		gradStart   = flag.String("grad-start", "", "gradient start color as hex, e.g. #667eea (default: built-in ramp)")
		gradEnd     = flag.String("grad-end", "", "gradient end color as hex (default: built-in ramp)")
		sunHex      = flag.String("sun", "", "sun color as hex (default: gold)")
		noGlow      = flag.Bool("no-glow", false, "disable the soft glow behind the sun")
		withSVG     = flag.Bool("svg", false, "also write a scalable icon.svg master")
		withPreview = flag.Bool("preview", false, "also write a preview.png contact sheet")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	icon := graphics.NewAppIcon()
	if *gradStart != "" || *gradEnd != "" {
		if *gradStart == "" || *gradEnd == "" {
			log.Fatal().Msg("-grad-start and -grad-end must be given together")
		}
		if err := icon.SetGradientHex(*gradStart, *gradEnd); err != nil {
			log.Fatal().Err(err).Msg("invalid gradient color")
		}
	}
	if *sunHex != "" {
		if err := icon.SetSunHex(*sunHex); err != nil {
			log.Fatal().Err(err).Msg("invalid sun color")
		}
	}
	if *noGlow {
		icon.GlowAlpha = 0
	}

	gen := iconset.NewGenerator(icon, *outDir)

	paths, err := gen.Generate()
	if err != nil {
		log.Fatal().Err(err).Msg("icon generation failed")
	}
	for _, p := range paths {
		log.Info().Str("file", p).Msg("icon written")
	}

	manifestPath := filepath.Join(*outDir, "icons.json")
	if err := gen.WriteManifest(manifestPath, filepath.Base(*outDir)); err != nil {
		log.Fatal().Err(err).Msg("writing manifest fragment failed")
	}
	log.Info().Str("file", manifestPath).Msg("manifest fragment written")

	if *withSVG {
		svgPath := filepath.Join(*outDir, "icon.svg")
		if err := writeSVG(icon, svgPath); err != nil {
			log.Fatal().Err(err).Msg("writing SVG master failed")
		}
		log.Info().Str("file", svgPath).Msg("SVG master written")
	}

	if *withPreview {
		previewPath := filepath.Join(*outDir, "preview.png")
		if err := gen.WritePreview(previewPath); err != nil {
			log.Fatal().Err(err).Msg("writing preview sheet failed")
		}
		log.Info().Str("file", previewPath).Msg("preview sheet written")
	}

	log.Info().Int("icons", len(paths)).Msg("done")
}

func writeSVG(icon *graphics.AppIcon, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := icon.WriteSVG(f, 512); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
