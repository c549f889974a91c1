// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package qr

import (
	"image/color"

	"github.com/fogleman/gg"
)

// drawEyes paints the three finder-pattern glyphs independently of the
// module pattern. Every style keeps the structural contract scanners rely
// on: an eye-colored outer ring, a background-colored 5×5 interior, and an
// eye-colored 3×3 core.
func drawEyes(dc *gg.Context, m *BitMatrix, st Style, cell float64) {
	n := m.Size()
	eyeColor := st.ResolvedEyeColor()

	origins := [3][2]int{
		{0, 0},                          // top-left
		{n - finderSize, 0},             // top-right
		{0, n - finderSize},             // bottom-left
	}

	for _, o := range origins {
		px := float64(o[0]) * cell
		py := float64(o[1]) * cell
		drawEye(dc, st, px, py, cell, eyeColor)
	}
}

// drawEye renders a single 7×7 finder glyph at pixel origin (px, py) using
// the fill-then-cut-then-fill-center technique.
func drawEye(dc *gg.Context, st Style, px, py, cell float64, eye color.RGBA) {
	outer := 7 * cell
	cutout := 5 * cell
	core := 3 * cell
	cx := px + outer/2
	cy := py + outer/2

	switch st.Eye {
	case EyeDot:
		// Concentric circles: 3.5-cell disc, 2.5-cell cutout, 1.5-cell core.
		dc.SetColor(eye)
		dc.DrawCircle(cx, cy, 3.5*cell)
		dc.Fill()

		dc.SetColor(st.Background)
		dc.DrawCircle(cx, cy, 2.5*cell)
		dc.Fill()

		dc.SetColor(eye)
		dc.DrawCircle(cx, cy, 1.5*cell)
		dc.Fill()

	case EyeRounded, EyeExtraRounded:
		radius := 1.5 * cell
		if st.Eye == EyeExtraRounded {
			radius = 2.5 * cell
		}

		dc.SetColor(eye)
		dc.DrawRoundedRectangle(px, py, outer, outer, radius)
		dc.Fill()

		dc.SetColor(st.Background)
		dc.DrawRoundedRectangle(px+cell, py+cell, cutout, cutout, radius*0.6)
		dc.Fill()

		dc.SetColor(eye)
		dc.DrawRoundedRectangle(px+2*cell, py+2*cell, core, core, radius*0.4)
		dc.Fill()

	default: // EyeSquare
		dc.SetColor(eye)
		dc.DrawRectangle(px, py, outer, outer)
		dc.Fill()

		dc.SetColor(st.Background)
		dc.DrawRectangle(px+cell, py+cell, cutout, cutout)
		dc.Fill()

		dc.SetColor(eye)
		dc.DrawRectangle(px+2*cell, py+2*cell, core, core)
		dc.Fill()
	}
}
