// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package qr implements the styled QR rendering pipeline: payload → module
// matrix → shaped raster with finder-pattern glyphs → decorative frame →
// PNG. Encoding delegates to a conformant QR library; this package owns
// only the visual treatment.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// finderSize is the side length of the three fixed finder patterns.
const finderSize = 7

// logoZoneFrac is the fraction of the matrix side covered by the centered
// logo exclusion zone when a logo is set.
const logoZoneFrac = 0.22

// BitMatrix is a square boolean module matrix. True means a dark module.
type BitMatrix struct {
	size int
	bits [][]bool
}

// Matrix encodes a payload at error-correction level H and returns its
// module matrix without a quiet zone.
func Matrix(payload string) (*BitMatrix, error) {
	if payload == "" {
		return nil, fmt.Errorf("qr: empty payload")
	}

	code, err := qrcode.New(payload, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	code.DisableBorder = true

	bits := code.Bitmap()
	return &BitMatrix{size: len(bits), bits: bits}, nil
}

// NewBitMatrix builds a matrix from raw rows. Rows must be square; used by
// tests and by callers that already hold module data.
func NewBitMatrix(bits [][]bool) (*BitMatrix, error) {
	n := len(bits)
	for _, row := range bits {
		if len(row) != n {
			return nil, fmt.Errorf("qr: matrix is not square")
		}
	}
	return &BitMatrix{size: n, bits: bits}, nil
}

// Size returns the side length N of the matrix.
func (m *BitMatrix) Size() int { return m.size }

// At reports whether the module at column x, row y is dark.
// Out-of-range coordinates are light.
func (m *BitMatrix) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		return false
	}
	return m.bits[y][x]
}

// InFinder reports whether (x, y) lies inside one of the three 7×7 finder
// zones (top-left, top-right, bottom-left). Those zones are drawn by the
// eye renderer, not the module rasterizer.
func (m *BitMatrix) InFinder(x, y int) bool {
	n := m.size
	switch {
	case x < finderSize && y < finderSize:
		return true
	case x >= n-finderSize && y < finderSize:
		return true
	case x < finderSize && y >= n-finderSize:
		return true
	}
	return false
}

// LogoZone returns the half-open module range [lo, hi) of the centered
// square logo exclusion zone: ⌈0.22·N⌉ cells centered at ⌊N/2⌋.
func (m *BitMatrix) LogoZone() (lo, hi int) {
	cells := (m.size*22 + 99) / 100 // ceil(0.22 * N)
	center := m.size / 2
	lo = center - cells/2
	hi = lo + cells
	return lo, hi
}

// InLogoZone reports whether (x, y) lies inside the logo exclusion zone.
func (m *BitMatrix) InLogoZone(x, y int) bool {
	lo, hi := m.LogoZone()
	return x >= lo && x < hi && y >= lo && y < hi
}
