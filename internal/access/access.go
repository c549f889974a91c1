// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package access issues and checks the per-code access-grant cookie that
// gates password-protected short links. The grant is an HMAC-signed cookie
// named qr_access_<code>; its presence (with a valid signature for that
// exact code) signals prior successful password entry in this browser.
package access

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// CookiePrefix namespaces grant cookies per code identifier.
const CookiePrefix = "qr_access_"

// DefaultTTL bounds how long a grant cookie stays valid.
const DefaultTTL = 24 * time.Hour

// grant is the signed cookie payload.
type grant struct {
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
}

// Gate signs and verifies access-grant cookies.
type Gate struct {
	sc     *securecookie.SecureCookie
	ttl    time.Duration
	secure bool
}

// NewGate creates a gate with the given signing key. secure marks issued
// cookies HTTPS-only (disable in development).
func NewGate(signingKey []byte, secure bool) *Gate {
	sc := securecookie.New(signingKey, nil)
	sc.MaxAge(int(DefaultTTL.Seconds()))
	return &Gate{sc: sc, ttl: DefaultTTL, secure: secure}
}

// cookieName returns the per-code cookie name.
func cookieName(code string) string {
	return CookiePrefix + code
}

// Grant issues the access cookie for a code after a successful password
// verification.
func (g *Gate) Grant(w http.ResponseWriter, code string) error {
	value, err := g.sc.Encode(cookieName(code), grant{
		Code:     code,
		IssuedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("access: encode grant: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName(code),
		Value:    value,
		Path:     "/q/" + code,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(g.ttl.Seconds()),
	})
	return nil
}

// Check reports whether the request carries a valid grant for the code.
// Missing, tampered, or cross-code cookies all read as "no grant".
func (g *Gate) Check(r *http.Request, code string) bool {
	cookie, err := r.Cookie(cookieName(code))
	if err != nil {
		return false
	}

	var gr grant
	if err := g.sc.Decode(cookieName(code), cookie.Value, &gr); err != nil {
		return false
	}

	return gr.Code == code
}
