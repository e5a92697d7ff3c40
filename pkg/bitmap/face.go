package bitmap

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// inkThreshold is the minimum coverage (0-255) for a pixel to count as ink.
const inkThreshold = 128

// faceFont rasterises text through a font.Face and thresholds the coverage
// mask into a grid.
type faceFont struct {
	name string
	face func() (font.Face, error)
}

func (f faceFont) Name() string { return f.name }

func (f faceFont) Rasterize(text string) (PixelGrid, error) {
	face, err := f.face()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	height := metrics.Height.Ceil()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("face %s measured %dx%d", f.name, width, height)
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	grid := make(PixelGrid, height)
	for y := 0; y < height; y++ {
		row := make([]bool, width)
		for x := 0; x < width; x++ {
			row[x] = dst.AlphaAt(x, y).A >= inkThreshold
		}
		grid[y] = row
	}
	return grid.Trim(), nil
}

// basicFace is the fixed 7x13 face shipped with x/image.
func basicFace() (font.Face, error) {
	return basicfont.Face7x13, nil
}

var (
	monoOnce sync.Once
	monoFont *sfnt.Font
	monoErr  error
)

// monoFace parses the embedded Go Mono TrueType font once and returns a face
// at size pixels.
func monoFace(size int) func() (font.Face, error) {
	return func() (font.Face, error) {
		monoOnce.Do(func() {
			monoFont, monoErr = opentype.Parse(gomono.TTF)
		})
		if monoErr != nil {
			return nil, fmt.Errorf("parsing go mono: %w", monoErr)
		}
		return opentype.NewFace(monoFont, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
}
