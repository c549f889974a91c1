// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

const (
	// MinSizePx and MaxSizePx bound the caller-chosen output dimension.
	MinSizePx = 64
	MaxSizePx = 2048

	// DefaultSizePx is used when the caller does not specify a size.
	DefaultSizePx = 512
)

// ClampSize clips a requested pixel size into the supported range and
// substitutes the default for non-positive values.
func ClampSize(px int) int {
	if px <= 0 {
		return DefaultSizePx
	}
	if px < MinSizePx {
		return MinSizePx
	}
	if px > MaxSizePx {
		return MaxSizePx
	}
	return px
}

// RenderPNG runs the full pipeline for a payload: encode, rasterize with
// the style, wrap in the frame preset, and PNG-encode. sizePx is the QR
// raster dimension; the framed output is proportionally larger.
func RenderPNG(payload string, st Style, sizePx int) ([]byte, error) {
	m, err := Matrix(payload)
	if err != nil {
		return nil, err
	}

	raster, err := Render(m, st, ClampSize(sizePx))
	if err != nil {
		return nil, err
	}

	framed, err := Compose(raster, st)
	if err != nil {
		return nil, err
	}

	return EncodePNG(framed)
}

// EncodePNG serializes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("qr: png encode: %w", err)
	}
	return buf.Bytes(), nil
}
