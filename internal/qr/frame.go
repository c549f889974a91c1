// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package qr

// FramePreset is one deterministic frame layout recipe. Presets are a
// fixed catalog keyed by id; there is no runtime mutation.
type FramePreset struct {
	ID          string
	LabelBand   string // "", "top", or "bottom"
	DefaultText string
	Uppercase   bool
	Cursive     bool
	PadFrac     float64 // padding around the QR, as a fraction of its size
	BorderFrac  float64 // border thickness fraction; 0 disables the border
	Dashed      bool
	RadiusFrac  float64 // outer corner radius fraction
	BandFrac    float64 // label band height fraction
	Decor       string  // decorative mockup drawn around the framed QR
}

// FrameCatalog is the immutable preset table, in studio display order.
// The "plain" preset is the implicit default: padding only, no chrome.
var FrameCatalog = []FramePreset{
	{ID: "plain", PadFrac: 0.08},
	{ID: "border", PadFrac: 0.08, BorderFrac: 0.035},
	{ID: "border-rounded", PadFrac: 0.08, BorderFrac: 0.035, RadiusFrac: 0.08},
	{ID: "border-dashed", PadFrac: 0.08, BorderFrac: 0.03, Dashed: true},
	{ID: "label-top", LabelBand: "top", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.08, BorderFrac: 0.03, BandFrac: 0.16},
	{ID: "label-bottom", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.08, BorderFrac: 0.03, BandFrac: 0.16},
	{ID: "banner", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.1, BandFrac: 0.2, RadiusFrac: 0.06},
	{ID: "bubble", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.1, BandFrac: 0.18, RadiusFrac: 0.12, Decor: "bubble"},
	{ID: "arrow", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.09, BandFrac: 0.18, Decor: "arrow"},
	{ID: "ticket", LabelBand: "bottom", DefaultText: "ADMIT ONE", Uppercase: true, PadFrac: 0.1, BorderFrac: 0.025, Dashed: true, BandFrac: 0.16, Decor: "ticket"},
	{ID: "handwriting", LabelBand: "bottom", DefaultText: "scan me", Cursive: true, PadFrac: 0.1, BandFrac: 0.18},
	{ID: "board", LabelBand: "top", DefaultText: "MENU", Uppercase: true, PadFrac: 0.12, BandFrac: 0.18, RadiusFrac: 0.05, Decor: "board"},
	{ID: "polaroid", LabelBand: "bottom", DefaultText: "", PadFrac: 0.1, BandFrac: 0.26, Decor: "polaroid"},
	{ID: "tag", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.1, BandFrac: 0.16, RadiusFrac: 0.1, Decor: "tag"},
	{ID: "phone", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.12, BandFrac: 0.14, RadiusFrac: 0.14, Decor: "phone"},
	{ID: "mug", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.12, BandFrac: 0.14, RadiusFrac: 0.1, Decor: "mug"},
	{ID: "bag", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.12, BandFrac: 0.14, Decor: "bag"},
	{ID: "gift", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.14, BandFrac: 0.14, Decor: "gift"},
	{ID: "tshirt", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.14, BandFrac: 0.14, Decor: "tshirt"},
	{ID: "cup", LabelBand: "bottom", DefaultText: "SCAN ME", Uppercase: true, PadFrac: 0.12, BandFrac: 0.14, RadiusFrac: 0.1, Decor: "cup"},
}

var frameIndex = func() map[string]FramePreset {
	m := make(map[string]FramePreset, len(FrameCatalog))
	for _, p := range FrameCatalog {
		m[p.ID] = p
	}
	return m
}()

// PresetFor resolves a frame id. Unknown or empty ids (and the legacy
// "none") resolve to the plain preset.
func PresetFor(id string) FramePreset {
	if p, ok := frameIndex[id]; ok {
		return p
	}
	return frameIndex["plain"]
}
