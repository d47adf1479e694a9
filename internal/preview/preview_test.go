package preview

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/dartsight/dart-scene-gen/internal/board"
	"github.com/dartsight/dart-scene-gen/internal/geom"
	"github.com/dartsight/dart-scene-gen/internal/randomizer"
)

// flatOptions renders one pixel per millimeter with no resampling, so
// tests can probe exact world positions.
func flatOptions() Options {
	return Options{Size: 410, Supersample: 1, Margin: 0.035, ShowLabels: false}
}

// probe returns the pixel covering the world position (wx, wy) meters.
func probe(t *testing.T, img image.Image, wx, wy float64) color.RGBA {
	t.Helper()
	bounds := img.Bounds()
	center := float64(bounds.Dx()) / 2.0
	scale := center / 0.205
	x := int(center + wx*scale)
	y := int(center - wy*scale)
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRender_Size(t *testing.T) {
	layout := board.Default()

	img, err := Render(layout, nil, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Fatalf("preview bounds %v, want 512x512", b)
	}

	if _, err := Render(layout, nil, Options{Size: 0}); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestRender_BoardColors(t *testing.T) {
	layout := board.Default()
	img, err := Render(layout, nil, flatOptions())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		wx, wy float64
		want   color.RGBA
	}{
		{"background outside board", 0.19, 0.0, backgroundColor},
		{"double ring wire", 0.1695, 0.0, wireColor},
		{"treble ring wire", 0.0969, 0.0, wireColor},
		{"dark single wedge 20", 0.0, 0.1295, color.RGBA{20, 20, 20, 255}},
		{"treble 20 is red", 0.0, 0.1025, color.RGBA{200, 30, 30, 255}},
		{"double 20 is red", 0.0, 0.165, color.RGBA{200, 30, 30, 255}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := probe(t, img, tc.wx, tc.wy); got != tc.want {
				t.Errorf("pixel at (%v, %v) = %v, want %v", tc.wx, tc.wy, got, tc.want)
			}
		})
	}

	// The bull is red, the wedge right of "20" alternates to white.
	if got := probe(t, img, 0.0, 0.0); got.R <= got.G || got.R <= got.B {
		t.Errorf("inner bull pixel %v is not red-dominant", got)
	}
	if got := probe(t, img, 0.040, 0.123); got != (color.RGBA{232, 226, 205, 255}) {
		t.Errorf("light wedge pixel %v, want off-white", got)
	}
}

func TestRender_RadialWires(t *testing.T) {
	layout := board.Default()
	img, err := Render(layout, nil, flatOptions())
	if err != nil {
		t.Fatal(err)
	}

	// Wedge boundary between "20" and "1" sits at 81 degrees.
	boundary := geom.PolarToCart(0.130, 81.0*3.14159265358979/180.0)
	if got := probe(t, img, boundary.X, boundary.Y); got != wireColor {
		t.Errorf("wedge boundary pixel %v, want wire color", got)
	}

	// No radial wires inside the bull area.
	if got := probe(t, img, 0.010, 0.0); got == wireColor {
		t.Error("radial wire drawn inside the bull")
	}
}

func TestRender_DartMarkers(t *testing.T) {
	layout := board.Default()
	sample := &randomizer.FrameSample{Darts: []randomizer.Placement{
		{Position: geom.Vec3{X: 0.05, Y: 0.05}},
		{Position: geom.Vec3{X: -0.08, Y: 0.02}, Hidden: true},
	}}

	img, err := Render(layout, sample, flatOptions())
	if err != nil {
		t.Fatal(err)
	}

	if got := probe(t, img, 0.05, 0.05); got != dartColor {
		t.Errorf("visible dart marker %v, want %v", got, dartColor)
	}
	if got := probe(t, img, -0.08, 0.02); got != hiddenDartColor {
		t.Errorf("hidden dart marker %v, want %v", got, hiddenDartColor)
	}
}

func TestRender_SampledFrame(t *testing.T) {
	m := randomizer.NewManager(11, randomizer.DefaultManagerConfig())
	sample, err := m.Randomize(0)
	if err != nil {
		t.Fatal(err)
	}

	img, err := Render(m.Layout, sample, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Fatalf("preview bounds %v, want 512x512", b)
	}

	// Bottom-left corner lies beyond the board in every configuration.
	got := color.RGBAModel.Convert(img.At(2, 509)).(color.RGBA)
	if got != backgroundColor {
		t.Errorf("corner pixel %v, want background", got)
	}

	// The bull takes its color from the sampled red field material.
	center := color.RGBAModel.Convert(img.At(256, 256)).(color.RGBA)
	if center.R <= center.G || center.R <= center.B {
		t.Errorf("bull pixel %v is not red-dominant", center)
	}
}

func TestSave(t *testing.T) {
	layout := board.Default()
	img, err := Render(layout, nil, Options{Size: 64, Supersample: 1})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "previews", "frame_0000.png")
	if err := Save(img, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("reopen saved preview: %v", err)
	}
	if b := loaded.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("saved preview bounds %v, want 64x64", b)
	}
}
