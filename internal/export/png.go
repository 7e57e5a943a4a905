// Package export writes still frames of a visualization to disk.
package export

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/san-kum/algoviz/internal/anim"
	"github.com/san-kum/algoviz/internal/surface"
)

// SnapshotPNG runs a visualization headless for the given number of frames
// on a w×h raster and saves the final frame as a PNG. The frame clock steps
// deterministically at the configured fps, so a given seed and frame count
// always produce the same image.
func SnapshotPNG(v anim.Visualization, w, h, frames, fps int, seed int64, caption, path string) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("snapshot: invalid size %dx%d", w, h)
	}
	if frames < 1 {
		frames = 1
	}
	if fps < 1 {
		fps = 30
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	surf := surface.NewImageSurface(w, h)
	clock := &anim.FakeClock{}
	step := time.Second / time.Duration(fps)
	rng := rand.New(rand.NewSource(seed))

	loop := anim.NewLoop(anim.NewImmediateScheduler(clock), surf, v, rng)
	loop.OnFrame(func(n int, took time.Duration) {
		clock.Advance(step)
		if n >= frames {
			loop.Stop()
		}
	})
	loop.Start()

	if caption != "" {
		if err := drawCaption(surf, caption); err != nil {
			return err
		}
	}
	return surf.SavePNG(path)
}

func drawCaption(surf *surface.ImageSurface, caption string) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("snapshot: parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    13,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc := surf.Context()
	if dc == nil {
		return nil
	}
	dc.SetFontFace(face)
	_, h := surf.Size()
	dc.SetColor(color.RGBA{0, 0, 0, 160})
	dc.DrawRectangle(0, h-20, float64(dc.Width()), 20)
	dc.Fill()
	dc.SetColor(color.White)
	dc.DrawString(caption, 6, h-6)
	return nil
}
