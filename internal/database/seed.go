package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: one sample
// code per template type, a password-gated code, and a plain redirect.
// It is a no-op when any records already exist.
func Seed(db *sql.DB) error {
	// Check if any codes exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM qr_codes").Scan(&count); err != nil {
		return fmt.Errorf("seed check qr_codes: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	seeds := []struct {
		code      string
		label     string
		targetURL string
		password  *string
		design    *string
	}{
		{
			code:      "demo-redirect",
			label:     "Plain redirect",
			targetURL: "https://example.com",
		},
		{
			code:      "demo-locked",
			label:     "Password gated",
			targetURL: "https://example.com/private",
			password:  strPtr(string(hash)),
		},
		{
			code:  "demo-links",
			label: "Link list",
			design: strPtr(`{
				"type": "link_list",
				"style": {"frame": "label-bottom", "frameLabel": "Follow us", "pattern": "rounded", "fgColor": "#1f2937"},
				"profile": {"title": "Acme Studio", "description": "Design and print, since 2012."},
				"links": [
					{"id": "1", "icon": "globe", "text": "Website", "url": "https://acme.example", "active": true},
					{"id": "2", "icon": "cart", "text": "Shop", "url": "https://shop.acme.example", "active": true},
					{"id": "3", "icon": "mail", "text": "Old newsletter", "url": "https://old.acme.example", "active": false}
				],
				"socials": [
					{"platform": "instagram", "url": "https://instagram.com/acme", "active": true},
					{"platform": "youtube", "url": "https://youtube.com/@acme", "active": true}
				]
			}`),
		},
		{
			code:  "demo-menu",
			label: "Restaurant menu",
			design: strPtr(`{
				"type": "menu",
				"style": {"frame": "board", "frameLabel": "Menu", "pattern": "dot", "cornerStyle": "rounded", "cornerColor": "#7c2d12"},
				"restaurant": {"name": "Trattoria Da Gigi", "description": "Cucina casalinga."},
				"categories": [
					{"id": "antipasti", "name": "Antipasti", "items": [
						{"name": "Bruschetta", "description": "Grilled bread, tomato, basil.", "price": "6.50", "allergens": ["gluten"]},
						{"name": "Caprese", "description": "Mozzarella, tomato, basil.", "price": "8.00", "allergens": ["lactose"]}
					]},
					{"id": "primi", "name": "Primi", "items": [
						{"name": "Arrabbiata", "description": "Penne, spicy tomato sauce.", "price": "11.00", "allergens": ["gluten", "spicy", "vegan"]}
					]}
				],
				"hours": [
					{"day": "Monday", "closed": true},
					{"day": "Tuesday", "open": "12:00", "close": "22:00"}
				],
				"contact": {"phone": "+39 06 555 0100", "address": "Via Roma 1"}
			}`),
		},
		{
			code:  "demo-coupon",
			label: "Coupon",
			design: strPtr(`{
				"type": "coupon",
				"style": {"frame": "ticket", "frameLabel": "10% off", "gradient": {"enabled": true, "start": "#7c3aed", "end": "#db2777"}},
				"coupon": {"title": "Spring sale", "code": "SPRING10", "discount": "10%", "validUntil": "2026-06-30", "buttonText": "Redeem", "buttonUrl": "https://shop.acme.example"}
			}`),
		},
		{
			code:  "demo-business",
			label: "Business profile",
			design: strPtr(`{
				"type": "business",
				"style": {"frame": "border-rounded", "pattern": "soft"},
				"business": {"name": "Acme Studio", "tagline": "Design and print", "contact": {"email": "hello@acme.example", "website": "https://acme.example"}}
			}`),
		},
	}

	for _, s := range seeds {
		_, err := db.Exec(`
			INSERT INTO qr_codes (code, label, target_url, password_hash, design)
			VALUES ($1, $2, $3, $4, $5)
		`, s.code, s.label, s.targetURL, s.password, s.design)
		if err != nil {
			return fmt.Errorf("seed insert %s: %w", s.code, err)
		}
	}

	slog.Info("database seeded with demo codes",
		"count", len(seeds),
		"gated_code", "demo-locked",
		"gated_password", "letmein",
	)

	return nil
}

func strPtr(s string) *string { return &s }
