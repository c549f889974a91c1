// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package design decodes the per-code design document: a JSON blob with a
// "type" discriminant selecting which scan-time template applies, plus the
// visual style used when rasterizing the QR image itself.
//
// Parsing is forgiving. A missing, malformed, or unrecognized
// document decodes to the None variant — the resolver then falls back to a
// plain redirect. Parse never reports an error to its caller.
package design

import (
	"encoding/json"
	"strings"
)

// Kind is the design document discriminant.
type Kind string

const (
	// KindNone marks a code with no special template: plain redirect.
	KindNone        Kind = ""
	KindCoupon      Kind = "coupon"
	KindLinkList    Kind = "link_list"
	KindSocialMedia Kind = "social_media"
	KindMenu        Kind = "menu"
	KindBusiness    Kind = "business"
)

// Design is the decoded design document. Exactly one of the variant
// pointers is non-nil for a typed document; all are nil for KindNone.
// Style is always populated (zero value means default rendering).
type Design struct {
	Kind     Kind
	Style    Style
	LinkList *LinkListDoc
	Menu     *MenuDoc
	Business *BusinessDoc
	Coupon   *CouponDoc
}

// Style describes the visual treatment of the rasterized QR code.
type Style struct {
	Frame       string    `json:"frame"`
	FrameLabel  string    `json:"frameLabel"`
	Pattern     string    `json:"pattern"`
	CornerStyle string    `json:"cornerStyle"`
	CornerColor string    `json:"cornerColor"`
	Foreground  string    `json:"fgColor"`
	Background  string    `json:"bgColor"`
	Gradient    *Gradient `json:"gradient,omitempty"`
	// Logo is an optional data URL (image/png or image/jpeg) composited
	// over the center of the code.
	Logo string `json:"logo,omitempty"`
}

// Gradient is a diagonal linear gradient spanning the full canvas.
type Gradient struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Active returns true if the gradient should be used for module fills.
func (g *Gradient) Active() bool {
	return g != nil && g.Enabled && g.Start != "" && g.End != ""
}

// envelope is the raw wire form: discriminant plus the undecoded remainder.
type envelope struct {
	Type  Kind  `json:"type"`
	Style Style `json:"style"`

	Profile json.RawMessage `json:"profile,omitempty"`

	Links   []LinkItem   `json:"links,omitempty"`
	Socials []SocialItem `json:"socials,omitempty"`
	Fonts   Fonts        `json:"fonts,omitempty"`
	Welcome *Welcome     `json:"welcome,omitempty"`

	Restaurant *Restaurant  `json:"restaurant,omitempty"`
	Categories []Category   `json:"categories,omitempty"`
	Hours      []DayHours   `json:"hours,omitempty"`
	Contact    *Contact     `json:"contact,omitempty"`
	Business   *BusinessDoc `json:"business,omitempty"`
	Coupon     *CouponDoc   `json:"coupon,omitempty"`
}

// Parse decodes a raw design blob. Any decode failure or unknown
// discriminant yields the None variant; the caller treats that as
// "no special template", never as an error.
func Parse(raw []byte) Design {
	none := Design{Kind: KindNone}
	if len(raw) == 0 || string(raw) == "null" {
		return none
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return none
	}

	d := Design{Style: env.Style}

	switch env.Type {
	case KindLinkList, KindSocialMedia:
		doc := &LinkListDoc{
			Links:   env.Links,
			Socials: env.Socials,
			Fonts:   env.Fonts,
			Welcome: env.Welcome,
		}
		if len(env.Profile) > 0 {
			// Profile decode failure leaves an empty header, not an error.
			_ = json.Unmarshal(env.Profile, &doc.Profile)
		}
		d.Kind = env.Type
		d.LinkList = doc
	case KindMenu:
		doc := &MenuDoc{
			Categories: env.Categories,
			Hours:      env.Hours,
			Socials:    env.Socials,
		}
		if env.Restaurant != nil {
			doc.Restaurant = *env.Restaurant
		}
		if env.Contact != nil {
			doc.Contact = *env.Contact
		}
		d.Kind = KindMenu
		d.Menu = doc
	case KindBusiness:
		if env.Business == nil {
			return none
		}
		d.Kind = KindBusiness
		d.Business = env.Business
	case KindCoupon:
		if env.Coupon == nil {
			return none
		}
		d.Kind = KindCoupon
		d.Coupon = env.Coupon
	default:
		return none
	}

	return d
}

// Diagnose classifies why a raw blob decoded to the None variant:
// "malformed" for invalid JSON, "unknown_type" for an unrecognized
// discriminant, and "" for blobs that are legitimately untyped (absent,
// null, or style-only documents).
func Diagnose(raw []byte) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "malformed"
	}
	switch env.Type {
	case KindNone:
		return ""
	case KindCoupon, KindLinkList, KindSocialMedia, KindMenu, KindBusiness:
		return ""
	}
	return "unknown_type"
}

// ParseStyle extracts only the style section, for image rendering of codes
// whose document has no recognized template type.
func ParseStyle(raw []byte) Style {
	if len(raw) == 0 {
		return Style{}
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Style{}
	}
	return env.Style
}

// Normalize lowercases and trims a discriminant or catalog id for lookup.
func Normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
