// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package design

// Profile is the header block of a link-list page.
type Profile struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
}

// LinkItem is one entry in a link-list page. Inactive items are excluded
// from rendered output entirely, not just hidden.
type LinkItem struct {
	ID     string `json:"id"`
	Icon   string `json:"icon,omitempty"`
	Text   string `json:"text"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// SocialItem is one social-platform entry. Platform must match the social
// platform catalog; unknown platforms render with the fallback icon.
type SocialItem struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Active   bool   `json:"active"`
}

// Fonts selects the typefaces used by a rendered page.
type Fonts struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// Welcome is an optional splash screen shown before a link-list page.
type Welcome struct {
	Image   string `json:"image"`
	Timeout int    `json:"timeout"` // seconds; 0 means no splash
}

// LinkListDoc is the content document for link_list and social_media codes.
type LinkListDoc struct {
	Profile Profile      `json:"profile"`
	Links   []LinkItem   `json:"links"`
	Socials []SocialItem `json:"socials"`
	Fonts   Fonts        `json:"fonts"`
	Welcome *Welcome     `json:"welcome,omitempty"`
}

// ActiveLinks returns the links to render, preserving document order.
func (d *LinkListDoc) ActiveLinks() []LinkItem {
	var out []LinkItem
	for _, l := range d.Links {
		if l.Active {
			out = append(out, l)
		}
	}
	return out
}

// ActiveSocials returns the social entries to render, preserving order.
func (d *LinkListDoc) ActiveSocials() []SocialItem {
	var out []SocialItem
	for _, s := range d.Socials {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// Restaurant is the header block of a menu page.
type Restaurant struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo,omitempty"`
	Cover       string `json:"cover,omitempty"`
}

// MenuItem is one dish inside a category.
type MenuItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Image       string   `json:"image,omitempty"`
	Allergens   []string `json:"allergens,omitempty"`
}

// Category is one accordion section of a menu page.
type Category struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// DayHours is one row of the opening-hours table.
type DayHours struct {
	Day    string `json:"day"`
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// Contact holds the contact section of a menu or business page. The
// section renders only when at least one field is set.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	Address string `json:"address,omitempty"`
}

// Empty reports whether the contact section should be omitted.
func (c Contact) Empty() bool {
	return c.Phone == "" && c.Email == "" && c.Website == "" && c.Address == ""
}

// MenuDoc is the content document for menu codes.
type MenuDoc struct {
	Restaurant Restaurant   `json:"restaurant"`
	Categories []Category   `json:"categories"`
	Hours      []DayHours   `json:"hours,omitempty"`
	Contact    Contact      `json:"contact"`
	Socials    []SocialItem `json:"socials,omitempty"`
}

// BusinessDoc is the content document for business profile codes.
type BusinessDoc struct {
	Name        string       `json:"name"`
	Tagline     string       `json:"tagline,omitempty"`
	Description string       `json:"description,omitempty"`
	Logo        string       `json:"logo,omitempty"`
	Cover       string       `json:"cover,omitempty"`
	Contact     Contact      `json:"contact"`
	Hours       []DayHours   `json:"hours,omitempty"`
	Socials     []SocialItem `json:"socials,omitempty"`
}

// CouponDoc is the content document for coupon codes.
type CouponDoc struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code"`
	Discount    string `json:"discount,omitempty"`
	ValidUntil  string `json:"validUntil,omitempty"`
	Terms       string `json:"terms,omitempty"`
	Image       string `json:"image,omitempty"`
	ButtonText  string `json:"buttonText,omitempty"`
	ButtonURL   string `json:"buttonUrl,omitempty"`
}
