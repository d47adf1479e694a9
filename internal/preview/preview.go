package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/dartsight/dart-scene-gen/internal/board"
	"github.com/dartsight/dart-scene-gen/internal/colorutil"
	"github.com/dartsight/dart-scene-gen/internal/randomizer"
)

// Options controls the preview rendering.
type Options struct {
	// Size is the output edge length in pixels; previews are square.
	Size int

	// Supersample is the oversampling factor applied before the final
	// downscale. 1 disables it.
	Supersample int

	// Margin is the world-space border around the double ring, in
	// meters. The segment numbers are drawn inside this border.
	Margin float64

	// ShowLabels draws the segment numbers and the visible score.
	ShowLabels bool
}

// DefaultOptions returns the stock preview parameters.
func DefaultOptions() Options {
	return Options{
		Size:        512,
		Supersample: 2,
		Margin:      0.035,
		ShowLabels:  true,
	}
}

// Wire and marker colors are fixed; the field colors come from the
// sampled appearance.
var (
	backgroundColor = color.RGBA{38, 38, 42, 255}
	wireColor       = color.RGBA{168, 168, 172, 255}
	dartColor       = color.RGBA{255, 214, 64, 255}
	hiddenDartColor = color.RGBA{120, 120, 120, 255}
	labelColor      = color.RGBA{235, 235, 235, 255}
)

// wireBand is a radial span in millimeters occupied by ring wire. Bull
// wires sit outside their ring radius, treble and double wires inside.
type wireBand struct{ inner, outer float64 }

var ringWires = []wireBand{
	{board.RInnerBull, board.RInnerBull + board.InnerBullWire},
	{board.ROuterBull, board.ROuterBull + board.OuterBullWire},
	{board.RInnerTreble - board.TrebleWire, board.RInnerTreble},
	{board.ROuterTreble - board.TrebleWire, board.ROuterTreble},
	{board.RInnerDouble - board.DoubleWire, board.RInnerDouble},
	{board.ROuterDouble - board.DoubleWire, board.ROuterDouble},
}

// halfRadialWireMM is half the painted width of a radial wire.
const halfRadialWireMM = 0.6

// Render draws the board face and the sampled dart placements of one
// frame. The sample's appearance colors paint the scoring fields.
func Render(layout *board.Layout, sample *randomizer.FrameSample, opts Options) (image.Image, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("preview size must be positive, got %d", opts.Size)
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}

	big := opts.Size * opts.Supersample
	halfWorld := board.ROuterDouble/1000.0 + opts.Margin
	img := image.NewRGBA(image.Rect(0, 0, big, big))

	palette := newPalette(sample)

	center := float64(big) / 2.0
	scale := center / halfWorld // pixels per meter

	for py := 0; py < big; py++ {
		for px := 0; px < big; px++ {
			// Pixel center to world meters, +Y up.
			wx := (float64(px) + 0.5 - center) / scale
			wy := (center - float64(py) - 0.5) / scale
			img.SetRGBA(px, py, boardPixel(layout, palette, wx, wy))
		}
	}

	if sample != nil {
		markerRadius := 4 * opts.Supersample
		for _, p := range sample.Darts {
			c := dartColor
			if p.Hidden {
				c = hiddenDartColor
			}
			mx := int(center + p.Position.X*scale)
			my := int(center - p.Position.Y*scale)
			drawMarker(img, mx, my, markerRadius, c)
		}
	}

	if opts.ShowLabels {
		drawSegmentLabels(img, center, scale, opts.Supersample)
		if sample != nil {
			drawText(img, 4*opts.Supersample, 4*opts.Supersample,
				fmt.Sprintf("%d", sample.VisibleScore()), opts.Supersample, labelColor)
		}
	}

	if opts.Supersample > 1 {
		return transform.Resize(img, opts.Size, opts.Size, transform.Linear), nil
	}
	return img, nil
}

// Save writes a rendered preview, creating parent directories as
// needed. The encoder is chosen by file extension.
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create preview directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	return nil
}

// palette holds the resolved field colors for one render.
type palette struct {
	red, green, white, black color.RGBA
	darkSegment              [board.Segments + 1]bool
}

func newPalette(sample *randomizer.FrameSample) palette {
	p := palette{
		red:   color.RGBA{200, 30, 30, 255},
		green: color.RGBA{30, 130, 50, 255},
		white: color.RGBA{232, 226, 205, 255},
		black: color.RGBA{20, 20, 20, 255},
	}
	if sample != nil {
		p.red = toRGBA8(sample.Appearance.FieldRed)
		p.green = toRGBA8(sample.Appearance.FieldGreen)
		p.white = toRGBA8(sample.Appearance.FieldWhite)
		p.black = toRGBA8(sample.Appearance.FieldBlack)
	}
	// Odd wheel positions hold the dark wedges ("20" among them).
	for i := 0; i < board.Segments; i++ {
		if i%2 == 1 {
			p.darkSegment[board.SegmentAt(i)] = true
		}
	}
	return p
}

// boardPixel picks the color of one world position.
func boardPixel(layout *board.Layout, pal palette, wx, wy float64) color.RGBA {
	r := math.Hypot(wx, wy)
	angle := math.Atan2(wy, wx)
	rMM := r * 1000.0

	if rMM > board.ROuterDouble {
		return backgroundColor
	}

	for _, w := range ringWires {
		if rMM >= w.inner && rMM <= w.outer {
			return wireColor
		}
	}

	// Radial wires run from the outer bull wire to the double ring.
	if rMM > board.ROuterBull+board.OuterBullWire {
		const halfSegment = board.SegmentAngle / 2
		shifted := math.Mod(math.Mod(angle, board.SegmentAngle)+board.SegmentAngle+halfSegment, board.SegmentAngle)
		angular := math.Min(shifted, board.SegmentAngle-shifted)
		if angular*rMM <= halfRadialWireMM {
			return wireColor
		}
	}

	field := layout.FieldAt(r, angle)
	switch field.Zone {
	case board.ZoneInnerBull:
		return pal.red
	case board.ZoneOuterBull:
		return pal.green
	case board.ZoneTreble, board.ZoneDouble:
		if pal.darkSegment[field.Segment] {
			return pal.red
		}
		return pal.green
	default:
		if pal.darkSegment[field.Segment] {
			return pal.black
		}
		return pal.white
	}
}

// drawMarker draws a cross centered on (x, y).
func drawMarker(img *image.RGBA, x, y, radius int, c color.RGBA) {
	bounds := img.Bounds()
	thickness := radius / 3
	if thickness < 1 {
		thickness = 1
	}
	for d := -radius; d <= radius; d++ {
		for t := -thickness; t <= thickness; t++ {
			setInBounds(img, bounds, x+d, y+t, c)
			setInBounds(img, bounds, x+t, y+d, c)
		}
	}
}

func setInBounds(img *image.RGBA, bounds image.Rectangle, x, y int, c color.RGBA) {
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		img.SetRGBA(x, y, c)
	}
}

// drawSegmentLabels writes each wedge number just outside the double
// ring, at the wedge's angular center.
func drawSegmentLabels(img *image.RGBA, center, scale float64, supersample int) {
	labelRadius := (board.ROuterDouble + 10.0) / 1000.0
	for i := 0; i < board.Segments; i++ {
		angle := float64(i) * board.SegmentAngle
		wx := labelRadius * math.Cos(angle)
		wy := labelRadius * math.Sin(angle)
		text := fmt.Sprintf("%d", board.SegmentAt(i))

		w, h := textSize(text, supersample)
		x := int(center+wx*scale) - w/2
		y := int(center-wy*scale) - h/2
		drawText(img, x, y, text, supersample, labelColor)
	}
}

func toRGBA8(c colorutil.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
