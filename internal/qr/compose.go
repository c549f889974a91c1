// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package qr

import (
	"image"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/opentype"
)

// Compose wraps a rasterized QR image in the frame preset selected by the
// style. The QR raster is drawn 1:1 into the output, never scaled or
// distorted, so framed codes stay scannable.
func Compose(qrImg image.Image, st Style) (image.Image, error) {
	preset := PresetFor(st.Frame)

	qrSize := qrImg.Bounds().Dx()
	pad := int(float64(qrSize) * preset.PadFrac)
	border := int(float64(qrSize) * preset.BorderFrac)
	band := 0
	if preset.LabelBand != "" {
		band = int(float64(qrSize) * preset.BandFrac)
	}

	top, right, bottom, left := decorMargins(preset.Decor, qrSize)

	width := qrSize + 2*(pad+border) + left + right
	height := qrSize + 2*(pad+border) + band + top + bottom

	accent := st.ResolvedEyeColor()

	dc := gg.NewContext(width, height)
	dc.SetColor(st.Background)
	dc.Clear()

	// Frame body bounds (excluding decorative margins).
	bx := float64(left)
	by := float64(top)
	bw := float64(qrSize + 2*(pad+border))
	bh := float64(qrSize + 2*(pad+border) + band)
	radius := float64(qrSize) * preset.RadiusFrac

	drawDecor(dc, preset.Decor, st, accent, bx, by, bw, bh, float64(qrSize))

	if border > 0 {
		dc.SetColor(accent)
		dc.SetLineWidth(float64(border))
		if preset.Dashed {
			dash := float64(qrSize) * 0.04
			dc.SetDash(dash, dash)
		}
		half := float64(border) / 2
		if radius > 0 {
			dc.DrawRoundedRectangle(bx+half, by+half, bw-float64(border), bh-float64(border), radius)
		} else {
			dc.DrawRectangle(bx+half, by+half, bw-float64(border), bh-float64(border))
		}
		dc.Stroke()
		dc.SetDash()
	}

	// QR placement: below the band for top labels, above it otherwise.
	qrX := left + border + pad
	qrY := top + border + pad
	if preset.LabelBand == "top" {
		qrY += band
	}
	dc.DrawImage(qrImg, qrX, qrY)

	if preset.LabelBand != "" {
		drawLabelBand(dc, preset, st, accent, bx, by, bw, bh, float64(band), float64(border))
	}

	return dc.Image(), nil
}

// drawLabelBand paints the accent band and its label text.
func drawLabelBand(dc *gg.Context, preset FramePreset, st Style, accent color.RGBA, bx, by, bw, bh, band, border float64) {
	label := strings.TrimSpace(st.FrameLabel)
	if label == "" {
		label = preset.DefaultText
	}
	if preset.Uppercase {
		label = strings.ToUpper(label)
	}

	bandY := by + bh - band - border
	if preset.LabelBand == "top" {
		bandY = by + border
	}

	// Handwriting and polaroid styles have no filled band: text sits
	// directly on the background.
	textColor := color.RGBA{255, 255, 255, 255}
	if preset.Cursive || preset.Decor == "polaroid" {
		textColor = accent
	} else {
		dc.SetColor(accent)
		dc.DrawRectangle(bx+border, bandY, bw-2*border, band)
		dc.Fill()
	}

	if label == "" {
		return
	}

	size := band * 0.5
	face := labelFace(size, preset.Cursive)
	if face == nil {
		return
	}
	dc.SetFontFace(face)
	dc.SetColor(textColor)

	label = truncateToWidth(dc, label, bw*0.9)
	dc.DrawStringAnchored(label, bx+bw/2, bandY+band/2, 0.5, 0.35)
}

// truncateToWidth shortens the label with an ellipsis until it fits.
func truncateToWidth(dc *gg.Context, s string, maxWidth float64) string {
	if w, _ := dc.MeasureString(s); w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + "…"
		if w, _ := dc.MeasureString(candidate); w <= maxWidth {
			return candidate
		}
	}
	return string(runes)
}

// font cache so each face is parsed once per size.
var (
	faceMu    sync.Mutex
	faceCache = map[string]font.Face{}
)

func labelFace(size float64, cursive bool) font.Face {
	ttf := gobold.TTF
	key := "bold"
	if cursive {
		ttf = goitalic.TTF
		key = "italic"
	}

	faceMu.Lock()
	defer faceMu.Unlock()

	cacheKey := key + ":" + formatSize(size)
	if f, ok := faceCache[cacheKey]; ok {
		return f
	}

	fnt, err := opentype.Parse(ttf)
	if err != nil {
		return nil
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	faceCache[cacheKey] = face
	return face
}

func formatSize(size float64) string {
	// Quantize to half points so the cache stays small across output sizes.
	return strconv.Itoa(int(size * 2))
}
