package view

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a PNG capture of the next drawn frame. The file is
// written to Options.ScreenshotDir as <label>_tick<N>.png.
func (g *Game) Screenshot(label string) {
	g.captures = append(g.captures, label)
}

// flushCaptures writes every queued capture of screen. Called at the end of
// Draw. Failures are reported on stderr and never stop the game.
func (g *Game) flushCaptures(screen *ebiten.Image) {
	if len(g.captures) == 0 {
		return
	}
	defer func() { g.captures = g.captures[:0] }()

	if err := os.MkdirAll(g.opts.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[sticks] screenshot: %v\n", err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := straightAlpha(pixels, b.Dx(), b.Dy())

	for _, label := range g.captures {
		name := fmt.Sprintf("%s_tick%d.png", fileLabel(label), g.engine.Tick())
		if err := savePNG(filepath.Join(g.opts.ScreenshotDir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[sticks] screenshot: %v\n", err)
		}
	}
}

// straightAlpha converts premultiplied RGBA bytes to an NRGBA image.
func straightAlpha(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := int(img.Pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = uint8(min(int(img.Pix[i+c])*255/a, 255))
		}
	}
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// fileLabel keeps letters, digits, '-' and '.' and maps everything else to
// '_'. An empty label becomes "frame".
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
