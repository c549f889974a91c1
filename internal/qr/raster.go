// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package qr

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Render rasterizes the matrix at the given pixel size. Modules inside the
// three finder zones are left to the eye renderer; modules inside the logo
// exclusion zone are skipped when a logo is set, and the logo is composited
// on top at the end. The output contains no quiet zone — the frame
// compositor is responsible for padding.
func Render(m *BitMatrix, st Style, sizePx int) (image.Image, error) {
	if m == nil || m.Size() == 0 {
		return nil, fmt.Errorf("qr: nil or empty matrix")
	}
	if sizePx < m.Size() {
		return nil, fmt.Errorf("qr: %dpx too small for %d modules", sizePx, m.Size())
	}

	n := m.Size()
	cell := float64(sizePx) / float64(n)

	dc := gg.NewContext(sizePx, sizePx)
	dc.SetColor(st.Background)
	dc.Clear()

	// One fill pass for all modules: flat color or a diagonal linear
	// gradient spanning the full canvas top-left to bottom-right.
	if st.GradientEnabled {
		grad := gg.NewLinearGradient(0, 0, float64(sizePx), float64(sizePx))
		grad.AddColorStop(0, st.GradientStart)
		grad.AddColorStop(1, st.GradientEnd)
		dc.SetFillStyle(grad)
	} else {
		dc.SetColor(st.Foreground)
	}

	hasLogo := st.Logo != nil
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !m.At(x, y) || m.InFinder(x, y) {
				continue
			}
			if hasLogo && m.InLogoZone(x, y) {
				continue
			}
			addModulePath(dc, st.Pattern, float64(x)*cell, float64(y)*cell, cell)
		}
	}
	dc.Fill()

	drawEyes(dc, m, st, cell)

	if hasLogo {
		compositeLogo(dc, m, st.Logo, cell, sizePx)
	}

	return dc.Image(), nil
}

// addModulePath appends the shape for one dark module at (px, py) with the
// given cell size to the current path.
func addModulePath(dc *gg.Context, shape PatternShape, px, py, cell float64) {
	cx := px + cell/2
	cy := py + cell/2

	switch shape {
	case PatternRounded:
		dc.DrawRoundedRectangle(px, py, cell, cell, 0.25*cell)
	case PatternSoft:
		dc.DrawRoundedRectangle(px, py, cell, cell, 0.15*cell)
	case PatternDot:
		dc.DrawCircle(cx, cy, 0.85*cell/2)
	case PatternHeart:
		addHeartPath(dc, cx, cy, 0.9*cell)
	case PatternDiamond:
		addDiamondPath(dc, cx, cy, 0.9*cell)
	default:
		dc.DrawRectangle(px, py, cell, cell)
	}
}

// addHeartPath traces a heart of overall size s centered at (cx, cy).
func addHeartPath(dc *gg.Context, cx, cy, s float64) {
	top := cy - 0.35*s
	dc.MoveTo(cx, cy+0.45*s)
	dc.CubicTo(cx-0.55*s, cy+0.05*s, cx-0.50*s, top, cx-0.25*s, top)
	dc.CubicTo(cx-0.10*s, top, cx, cy-0.18*s, cx, cy-0.08*s)
	dc.CubicTo(cx, cy-0.18*s, cx+0.10*s, top, cx+0.25*s, top)
	dc.CubicTo(cx+0.50*s, top, cx+0.55*s, cy+0.05*s, cx, cy+0.45*s)
	dc.ClosePath()
}

// addDiamondPath traces a diamond of overall size s centered at (cx, cy).
func addDiamondPath(dc *gg.Context, cx, cy, s float64) {
	half := s / 2
	dc.MoveTo(cx, cy-half)
	dc.LineTo(cx+half, cy)
	dc.LineTo(cx, cy+half)
	dc.LineTo(cx-half, cy)
	dc.ClosePath()
}

// compositeLogo scales the logo to the pixel extent of the exclusion zone
// and draws it centered. The zone is cleared by the raster pass already,
// so the logo never overlaps painted modules.
func compositeLogo(dc *gg.Context, m *BitMatrix, logo image.Image, cell float64, sizePx int) {
	lo, hi := m.LogoZone()
	zonePx := int(float64(hi-lo) * cell)
	if zonePx <= 0 {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, zonePx, zonePx))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), logo, logo.Bounds(), xdraw.Over, nil)

	offset := (sizePx - zonePx) / 2
	dc.DrawImage(scaled, offset, offset)
}
