package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFrameCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range FrameCatalog {
		if p.ID == "" {
			t.Error("preset with empty id")
		}
		if seen[p.ID] {
			t.Errorf("duplicate preset id %q", p.ID)
		}
		seen[p.ID] = true
	}
	if !seen["plain"] {
		t.Error("catalog must contain the plain preset")
	}
}

func TestPresetFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"border", "border"},
		{"label-bottom", "label-bottom"},
		{"", "plain"},
		{"none", "plain"},
		{"does-not-exist", "plain"},
	}

	for _, tt := range tests {
		if got := PresetFor(tt.in).ID; got != tt.want {
			t.Errorf("PresetFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// testQRImage builds a raster with a distinct color at every pixel so any
// scaling, cropping, or displacement by the compositor is detectable.
func testQRImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), uint8(x ^ y), 255})
		}
	}
	return img
}

// qrOffset mirrors the compositor's placement math for a preset.
func qrOffset(preset FramePreset, qrSize int) (x, y int) {
	pad := int(float64(qrSize) * preset.PadFrac)
	border := int(float64(qrSize) * preset.BorderFrac)
	top, _, _, left := decorMargins(preset.Decor, qrSize)

	x = left + border + pad
	y = top + border + pad
	if preset.LabelBand == "top" {
		y += int(float64(qrSize) * preset.BandFrac)
	}
	return x, y
}

// TestComposePreservesQRPixels checks that every preset embeds the QR
// raster 1:1: each source pixel appears unchanged at the computed offset.
func TestComposePreservesQRPixels(t *testing.T) {
	const qrSize = 200
	src := testQRImage(qrSize)

	for _, preset := range FrameCatalog {
		t.Run(preset.ID, func(t *testing.T) {
			st := DefaultStyle()
			st.Frame = preset.ID
			st.FrameLabel = "Table 7"

			out, err := Compose(src, st)
			if err != nil {
				t.Fatalf("Compose: %v", err)
			}

			offX, offY := qrOffset(preset, qrSize)
			for _, p := range [][2]int{{0, 0}, {qrSize - 1, 0}, {0, qrSize - 1}, {qrSize - 1, qrSize - 1}, {qrSize / 2, qrSize / 2}, {13, 131}} {
				want := rgbaAt(src, p[0], p[1])
				got := rgbaAt(out, offX+p[0], offY+p[1])
				if got != want {
					t.Fatalf("pixel (%d,%d): got %v, want %v — QR raster was scaled or displaced", p[0], p[1], got, want)
				}
			}
		})
	}
}

func TestComposePlainDimensions(t *testing.T) {
	const qrSize = 200
	st := DefaultStyle() // Frame is empty → plain preset

	out, err := Compose(testQRImage(qrSize), st)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	pad := int(float64(qrSize) * 0.08)
	want := qrSize + 2*pad
	if out.Bounds().Dx() != want || out.Bounds().Dy() != want {
		t.Errorf("plain frame bounds = %dx%d, want %dx%d",
			out.Bounds().Dx(), out.Bounds().Dy(), want, want)
	}
}

func TestComposeLabelBandAddsHeight(t *testing.T) {
	const qrSize = 200
	plain := DefaultStyle()
	labeled := DefaultStyle()
	labeled.Frame = "label-bottom"

	src := testQRImage(qrSize)
	plainOut, err := Compose(src, plain)
	if err != nil {
		t.Fatalf("Compose plain: %v", err)
	}
	labeledOut, err := Compose(src, labeled)
	if err != nil {
		t.Fatalf("Compose labeled: %v", err)
	}

	if labeledOut.Bounds().Dy() <= plainOut.Bounds().Dy() {
		t.Errorf("label band should add height: labeled %d, plain %d",
			labeledOut.Bounds().Dy(), plainOut.Bounds().Dy())
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultSizePx},
		{-5, DefaultSizePx},
		{10, MinSizePx},
		{64, 64},
		{512, 512},
		{2048, 2048},
		{5000, MaxSizePx},
	}

	for _, tt := range tests {
		if got := ClampSize(tt.in); got != tt.want {
			t.Errorf("ClampSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	out, err := RenderPNG(testPayload, DefaultStyle(), DefaultSizePx)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	// The frame adds margins, so the output is at least the QR canvas.
	if img.Bounds().Dx() < DefaultSizePx || img.Bounds().Dy() < DefaultSizePx {
		t.Errorf("bounds %v smaller than the requested canvas", img.Bounds())
	}

	if _, err := RenderPNG("", DefaultStyle(), DefaultSizePx); err == nil {
		t.Error("expected an error for an empty payload")
	}
}
