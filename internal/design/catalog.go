// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package design

// Allergen is one entry of the fixed allergen vocabulary used by menu
// item badges. The vocabulary is closed: tags outside it are dropped.
type Allergen struct {
	ID    string
	Label string
	Badge string // background color of the rendered badge
}

// Allergens is the fixed 5-tag vocabulary, in badge display order.
var Allergens = []Allergen{
	{ID: "gluten", Label: "Gluten", Badge: "#f59e0b"},
	{ID: "lactose", Label: "Lactose", Badge: "#3b82f6"},
	{ID: "vegan", Label: "Vegan", Badge: "#22c55e"},
	{ID: "nuts", Label: "Nuts", Badge: "#a16207"},
	{ID: "spicy", Label: "Spicy", Badge: "#ef4444"},
}

var allergenIndex = func() map[string]Allergen {
	m := make(map[string]Allergen, len(Allergens))
	for _, a := range Allergens {
		m[a.ID] = a
	}
	return m
}()

// AllergenByID looks up an allergen tag. The second result is false for
// tags outside the vocabulary.
func AllergenByID(id string) (Allergen, bool) {
	a, ok := allergenIndex[Normalize(id)]
	return a, ok
}

// KnownAllergens filters a tag list down to vocabulary entries,
// preserving order and dropping duplicates.
func KnownAllergens(tags []string) []Allergen {
	seen := make(map[string]bool, len(tags))
	var out []Allergen
	for _, t := range tags {
		a, ok := AllergenByID(t)
		if !ok || seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}

// SocialPlatform is one entry of the social platform catalog.
type SocialPlatform struct {
	ID    string
	Label string
	Color string // brand color used for the rendered icon chip
}

// SocialPlatforms is the immutable platform catalog, loaded once at
// process start. Unknown platforms fall back to FallbackPlatform.
var SocialPlatforms = map[string]SocialPlatform{
	"instagram": {ID: "instagram", Label: "Instagram", Color: "#e1306c"},
	"facebook":  {ID: "facebook", Label: "Facebook", Color: "#1877f2"},
	"x":         {ID: "x", Label: "X", Color: "#111111"},
	"tiktok":    {ID: "tiktok", Label: "TikTok", Color: "#010101"},
	"youtube":   {ID: "youtube", Label: "YouTube", Color: "#ff0000"},
	"linkedin":  {ID: "linkedin", Label: "LinkedIn", Color: "#0a66c2"},
	"whatsapp":  {ID: "whatsapp", Label: "WhatsApp", Color: "#25d366"},
	"telegram":  {ID: "telegram", Label: "Telegram", Color: "#229ed9"},
	"pinterest": {ID: "pinterest", Label: "Pinterest", Color: "#bd081c"},
	"spotify":   {ID: "spotify", Label: "Spotify", Color: "#1db954"},
}

// FallbackPlatform is used for platform ids outside the catalog.
var FallbackPlatform = SocialPlatform{ID: "web", Label: "Website", Color: "#6b7280"}

// PlatformFor resolves a platform id against the catalog.
func PlatformFor(id string) SocialPlatform {
	if p, ok := SocialPlatforms[Normalize(id)]; ok {
		return p
	}
	return FallbackPlatform
}
