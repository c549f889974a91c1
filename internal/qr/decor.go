// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package qr

import (
	"image/color"

	"github.com/fogleman/gg"
)

// decorMargins returns the extra canvas space (top, right, bottom, left)
// a decorative mockup needs around the frame body, in pixels relative to
// the QR raster size.
func decorMargins(decor string, qrSize int) (top, right, bottom, left int) {
	q := float64(qrSize)
	switch decor {
	case "phone":
		return int(q * 0.22), int(q * 0.06), int(q * 0.22), int(q * 0.06)
	case "mug":
		return 0, int(q * 0.32), 0, 0
	case "bag":
		return int(q * 0.28), 0, 0, 0
	case "gift":
		return int(q * 0.26), 0, 0, 0
	case "tshirt":
		return int(q * 0.22), int(q * 0.26), 0, int(q * 0.26)
	case "cup":
		return int(q * 0.14), 0, int(q * 0.1), 0
	case "tag":
		return 0, 0, 0, int(q * 0.24)
	case "bubble":
		return 0, 0, int(q * 0.16), 0
	case "arrow":
		return 0, 0, int(q * 0.2), 0
	case "ticket":
		return 0, int(q * 0.06), 0, int(q * 0.06)
	case "board":
		return int(q * 0.16), 0, 0, 0
	}
	return 0, 0, 0, 0
}

// drawDecor paints the decorative mockup shapes behind and around the
// frame body. (bx, by, bw, bh) is the frame body rectangle; q is the QR
// raster size used as the scale unit.
func drawDecor(dc *gg.Context, decor string, st Style, accent color.RGBA, bx, by, bw, bh, q float64) {
	switch decor {
	case "phone":
		// Device body surrounding the frame, with a speaker slot above
		// and a home indicator below.
		dc.SetColor(accent)
		dc.DrawRoundedRectangle(bx-0.04*q, by-0.2*q, bw+0.08*q, bh+0.4*q, 0.12*q)
		dc.Fill()
		dc.SetColor(st.Background)
		dc.DrawRoundedRectangle(bx, by-0.02*q, bw, bh+0.04*q, 0.06*q)
		dc.Fill()
		dc.DrawRoundedRectangle(bx+bw/2-0.12*q, by-0.13*q, 0.24*q, 0.03*q, 0.015*q)
		dc.Fill()
		dc.DrawRoundedRectangle(bx+bw/2-0.1*q, by+bh+0.08*q, 0.2*q, 0.025*q, 0.0125*q)
		dc.Fill()

	case "mug":
		// Handle ring on the right side of the body.
		dc.SetColor(accent)
		dc.SetLineWidth(0.07 * q)
		dc.DrawArc(bx+bw+0.1*q, by+bh/2, 0.18*q, -1.2, 1.2)
		dc.Stroke()

	case "bag":
		// Two carrier handles rising from the top edge.
		dc.SetColor(accent)
		dc.SetLineWidth(0.05 * q)
		dc.DrawArc(bx+bw*0.32, by, 0.14*q, 3.14159, 2*3.14159)
		dc.Stroke()
		dc.DrawArc(bx+bw*0.68, by, 0.14*q, 3.14159, 2*3.14159)
		dc.Stroke()

	case "gift":
		// Vertical ribbon through the body plus a two-loop bow on top.
		dc.SetColor(accent)
		dc.DrawRectangle(bx+bw/2-0.04*q, by, 0.08*q, bh)
		dc.Fill()
		dc.DrawCircle(bx+bw/2-0.1*q, by-0.1*q, 0.09*q)
		dc.DrawCircle(bx+bw/2+0.1*q, by-0.1*q, 0.09*q)
		dc.Fill()

	case "tshirt":
		// Shoulder line and sleeves behind the body.
		dc.SetColor(accent)
		dc.MoveTo(bx-0.22*q, by+0.1*q)
		dc.LineTo(bx+0.1*q, by-0.16*q)
		dc.LineTo(bx+bw-0.1*q, by-0.16*q)
		dc.LineTo(bx+bw+0.22*q, by+0.1*q)
		dc.LineTo(bx+bw+0.1*q, by+0.32*q)
		dc.LineTo(bx+bw, by+0.2*q)
		dc.LineTo(bx, by+0.2*q)
		dc.LineTo(bx-0.1*q, by+0.32*q)
		dc.ClosePath()
		dc.Fill()

	case "cup":
		// Takeaway lid above and a tapered base hint below.
		dc.SetColor(accent)
		dc.DrawRoundedRectangle(bx-0.02*q, by-0.12*q, bw+0.04*q, 0.08*q, 0.03*q)
		dc.Fill()
		dc.DrawRectangle(bx+bw*0.15, by+bh+0.02*q, bw*0.7, 0.05*q)
		dc.Fill()

	case "tag":
		// String hole and a loop of string to the left.
		dc.SetColor(accent)
		dc.SetLineWidth(0.03 * q)
		dc.DrawCircle(bx+0.08*q, by+bh/2, 0.05*q)
		dc.Stroke()
		dc.DrawArc(bx-0.1*q, by+bh/2, 0.16*q, 0.6, 5.6)
		dc.Stroke()

	case "bubble":
		// Speech-bubble tail below the body.
		dc.SetColor(accent)
		dc.MoveTo(bx+bw*0.42, by+bh-0.01*q)
		dc.LineTo(bx+bw*0.5, by+bh+0.14*q)
		dc.LineTo(bx+bw*0.58, by+bh-0.01*q)
		dc.ClosePath()
		dc.Fill()

	case "arrow":
		// Downward pointer under the label band.
		dc.SetColor(accent)
		dc.MoveTo(bx+bw*0.38, by+bh-0.01*q)
		dc.LineTo(bx+bw*0.5, by+bh+0.18*q)
		dc.LineTo(bx+bw*0.62, by+bh-0.01*q)
		dc.ClosePath()
		dc.Fill()

	case "ticket":
		// Half-circle notches on each side, admission-ticket style.
		dc.SetColor(st.Background)
		dc.DrawCircle(bx, by+bh/2, 0.06*q)
		dc.DrawCircle(bx+bw, by+bh/2, 0.06*q)
		dc.Fill()

	case "board":
		// Hanging bar with two chains.
		dc.SetColor(accent)
		dc.DrawRoundedRectangle(bx+bw*0.2, by-0.14*q, bw*0.6, 0.04*q, 0.02*q)
		dc.Fill()
		dc.SetLineWidth(0.02 * q)
		dc.DrawLine(bx+bw*0.3, by-0.1*q, bx+bw*0.3, by)
		dc.Stroke()
		dc.DrawLine(bx+bw*0.7, by-0.1*q, bx+bw*0.7, by)
		dc.Stroke()

	case "polaroid":
		// Thin print edge around the body.
		dc.SetColor(color.RGBA{229, 231, 235, 255})
		dc.SetLineWidth(0.015 * q)
		dc.DrawRectangle(bx, by, bw, bh)
		dc.Stroke()
	}
}
