// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package qr

import (
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"qrlink/internal/design"
)

// PatternShape selects how dark modules are painted.
type PatternShape string

const (
	PatternSquare  PatternShape = "square"
	PatternRounded PatternShape = "rounded"
	PatternSoft    PatternShape = "soft"
	PatternDot     PatternShape = "dot"
	PatternHeart   PatternShape = "heart"
	PatternDiamond PatternShape = "diamond"
)

// EyeShape selects the finder-pattern glyph style.
type EyeShape string

const (
	EyeSquare       EyeShape = "square"
	EyeDot          EyeShape = "dot"
	EyeRounded      EyeShape = "rounded"
	EyeExtraRounded EyeShape = "extra-rounded"
)

// Style is the fully resolved rendering style: colors parsed, logo decoded,
// shape ids validated. Build one with FromDesign or fill it directly.
type Style struct {
	Pattern    PatternShape
	Eye        EyeShape
	Foreground color.RGBA
	Background color.RGBA
	// EyeColor is the explicit corner color; nil selects the gradient
	// start (when the gradient is active) or the flat foreground.
	EyeColor *color.RGBA

	GradientEnabled bool
	GradientStart   color.RGBA
	GradientEnd     color.RGBA

	// Logo is composited over the center and enables the exclusion zone.
	Logo image.Image

	Frame      string
	FrameLabel string
}

// DefaultStyle renders plain black-on-white squares with classic eyes.
func DefaultStyle() Style {
	return Style{
		Pattern:    PatternSquare,
		Eye:        EyeSquare,
		Foreground: color.RGBA{0, 0, 0, 255},
		Background: color.RGBA{255, 255, 255, 255},
	}
}

// FromDesign resolves a persisted design style into a rendering style.
// Unknown ids fall back to defaults; a bad logo data URL is ignored so the
// code still renders without it.
func FromDesign(ds design.Style) Style {
	st := DefaultStyle()

	switch PatternShape(design.Normalize(ds.Pattern)) {
	case PatternRounded:
		st.Pattern = PatternRounded
	case PatternSoft, "extra-rounded":
		st.Pattern = PatternSoft
	case PatternDot:
		st.Pattern = PatternDot
	case PatternHeart:
		st.Pattern = PatternHeart
	case PatternDiamond:
		st.Pattern = PatternDiamond
	}

	switch EyeShape(design.Normalize(ds.CornerStyle)) {
	case EyeDot:
		st.Eye = EyeDot
	case EyeRounded:
		st.Eye = EyeRounded
	case EyeExtraRounded:
		st.Eye = EyeExtraRounded
	}

	st.Foreground = parseHexColor(ds.Foreground, st.Foreground)
	st.Background = parseHexColor(ds.Background, st.Background)

	if ds.CornerColor != "" {
		c := parseHexColor(ds.CornerColor, st.Foreground)
		st.EyeColor = &c
	}

	if ds.Gradient.Active() {
		st.GradientEnabled = true
		st.GradientStart = parseHexColor(ds.Gradient.Start, st.Foreground)
		st.GradientEnd = parseHexColor(ds.Gradient.End, st.Foreground)
	}

	if ds.Logo != "" {
		if img, err := decodeDataURL(ds.Logo); err == nil {
			st.Logo = img
		}
	}

	st.Frame = design.Normalize(ds.Frame)
	st.FrameLabel = ds.FrameLabel

	return st
}

// ResolvedEyeColor applies the eye color precedence: explicit corner color,
// then gradient start, then flat foreground.
func (s Style) ResolvedEyeColor() color.RGBA {
	if s.EyeColor != nil {
		return *s.EyeColor
	}
	if s.GradientEnabled {
		return s.GradientStart
	}
	return s.Foreground
}

// parseHexColor parses "#rgb" and "#rrggbb" values, returning fallback on
// anything it cannot parse.
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return fallback
	}
	hex := s[1:]

	var r, g, b uint8
	switch len(hex) {
	case 3:
		rv, ok1 := hexNibble(hex[0])
		gv, ok2 := hexNibble(hex[1])
		bv, ok3 := hexNibble(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return fallback
		}
		r, g, b = rv*17, gv*17, bv*17
	case 6:
		var vals [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(hex[2*i])
			lo, ok2 := hexNibble(hex[2*i+1])
			if !ok1 || !ok2 {
				return fallback
			}
			vals[i] = hi<<4 | lo
		}
		r, g, b = vals[0], vals[1], vals[2]
	default:
		return fallback
	}

	return color.RGBA{r, g, b, 255}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// decodeDataURL decodes a base64 image data URL (image/png or image/jpeg).
func decodeDataURL(s string) (image.Image, error) {
	idx := strings.Index(s, ";base64,")
	if idx < 0 || !strings.HasPrefix(s, "data:image/") {
		return nil, errBadDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(s[idx+len(";base64,"):])
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(strings.NewReader(string(raw)))
	return img, err
}

var errBadDataURL = errors.New("qr: not an image data URL")
