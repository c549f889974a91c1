package qr

import (
	"image"
	"image/color"
	"testing"
)

const testPayload = "https://example.com/q/demo"

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// moduleCenter returns the pixel at the center of module (x, y) for a
// render with the given cell size in pixels.
func moduleCenter(x, y, cell int) (int, int) {
	return x*cell + cell/2, y*cell + cell/2
}

// TestRenderEyeStructure verifies the structural contract of every eye
// style: eye-colored outer ring, background interior, eye-colored core.
// Sampled along the horizontal center line of each finder, where all four
// glyph shapes are solid.
func TestRenderEyeStructure(t *testing.T) {
	m, err := Matrix(testPayload)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	n := m.Size()
	const cell = 10

	eye := color.RGBA{200, 0, 0, 255}
	fg := color.RGBA{0, 0, 200, 255}
	bg := color.RGBA{255, 255, 255, 255}

	for _, shape := range []EyeShape{EyeSquare, EyeDot, EyeRounded, EyeExtraRounded} {
		t.Run(string(shape), func(t *testing.T) {
			st := DefaultStyle()
			st.Eye = shape
			st.Foreground = fg
			st.Background = bg
			st.EyeColor = &eye

			img, err := Render(m, st, n*cell)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}

			origins := [3][2]int{{0, 0}, {n - finderSize, 0}, {0, n - finderSize}}
			for _, o := range origins {
				// Ring, interior, core along the middle row of the glyph.
				ringX, ringY := moduleCenter(o[0], o[1]+3, cell)
				cutX, cutY := moduleCenter(o[0]+1, o[1]+3, cell)
				coreX, coreY := moduleCenter(o[0]+3, o[1]+3, cell)

				if got := rgbaAt(img, ringX, ringY); got != eye {
					t.Errorf("eye at (%d,%d): ring pixel = %v, want %v", o[0], o[1], got, eye)
				}
				if got := rgbaAt(img, cutX, cutY); got != bg {
					t.Errorf("eye at (%d,%d): interior pixel = %v, want %v", o[0], o[1], got, bg)
				}
				if got := rgbaAt(img, coreX, coreY); got != eye {
					t.Errorf("eye at (%d,%d): core pixel = %v, want %v", o[0], o[1], got, eye)
				}
			}
		})
	}
}

// firstDarkModule finds a dark module outside the finder zones (and outside
// the logo zone when excludeLogo is set), scanning top-left to bottom-right.
func firstDarkModule(m *BitMatrix, excludeLogo bool) (int, int, bool) {
	n := m.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !m.At(x, y) || m.InFinder(x, y) {
				continue
			}
			if excludeLogo && m.InLogoZone(x, y) {
				continue
			}
			return x, y, true
		}
	}
	return 0, 0, false
}

func TestRenderFlatModuleColor(t *testing.T) {
	m, err := Matrix(testPayload)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	const cell = 10

	st := DefaultStyle()
	st.Foreground = color.RGBA{0, 100, 0, 255}

	img, err := Render(m, st, m.Size()*cell)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	x, y, ok := firstDarkModule(m, false)
	if !ok {
		t.Fatal("no dark module outside the finders")
	}
	px, py := moduleCenter(x, y, cell)
	if got := rgbaAt(img, px, py); got != st.Foreground {
		t.Errorf("module (%d,%d) center = %v, want %v", x, y, got, st.Foreground)
	}
}

func TestRenderLogoZone(t *testing.T) {
	m, err := Matrix(testPayload)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	const cell = 10
	sizePx := m.Size() * cell

	logoColor := color.RGBA{0, 0, 255, 255}
	logo := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			logo.SetRGBA(x, y, logoColor)
		}
	}

	st := DefaultStyle()
	st.Logo = logo

	img, err := Render(m, st, sizePx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// The center of the canvas lies inside the exclusion zone and must show
	// the composited logo, not a module.
	if got := rgbaAt(img, sizePx/2, sizePx/2); got != logoColor {
		t.Errorf("canvas center = %v, want logo color %v", got, logoColor)
	}

	// Without a logo the same modules render normally.
	st.Logo = nil
	img, err = Render(m, st, sizePx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lo, hi := m.LogoZone()
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			if !m.At(x, y) || m.InFinder(x, y) {
				continue
			}
			px, py := moduleCenter(x, y, cell)
			if got := rgbaAt(img, px, py); got != st.Foreground {
				t.Fatalf("module (%d,%d) = %v, want foreground without a logo", x, y, got)
			}
		}
	}
}

func TestRenderGradientVariesAlongDiagonal(t *testing.T) {
	m, err := Matrix(testPayload)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	const cell = 10

	st := DefaultStyle()
	st.GradientEnabled = true
	st.GradientStart = color.RGBA{255, 0, 0, 255}
	st.GradientEnd = color.RGBA{0, 0, 255, 255}

	img, err := Render(m, st, m.Size()*cell)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Pick the dark modules nearest to and furthest from the top-left along
	// the diagonal.
	n := m.Size()
	minX, minY, maxX, maxY := -1, -1, -1, -1
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !m.At(x, y) || m.InFinder(x, y) {
				continue
			}
			if minX < 0 || x+y < minX+minY {
				minX, minY = x, y
			}
			if maxX < 0 || x+y > maxX+maxY {
				maxX, maxY = x, y
			}
		}
	}
	if minX < 0 || maxX < 0 || minX+minY == maxX+maxY {
		t.Fatal("could not find two dark modules at distinct diagonal positions")
	}

	ex, ey := moduleCenter(minX, minY, cell)
	lx, ly := moduleCenter(maxX, maxY, cell)
	early := rgbaAt(img, ex, ey)
	late := rgbaAt(img, lx, ly)

	if early.R <= late.R {
		t.Errorf("red channel should fade along the diagonal: early %v, late %v", early, late)
	}
	if early.B >= late.B {
		t.Errorf("blue channel should grow along the diagonal: early %v, late %v", early, late)
	}
}

func TestRenderRejectsUndersizedCanvas(t *testing.T) {
	m, err := Matrix(testPayload)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	if _, err := Render(m, DefaultStyle(), m.Size()-1); err == nil {
		t.Error("expected an error for a canvas smaller than the matrix")
	}
	if _, err := Render(nil, DefaultStyle(), 100); err == nil {
		t.Error("expected an error for a nil matrix")
	}
}
