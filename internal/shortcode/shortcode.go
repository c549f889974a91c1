// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package shortcode generates the opaque URL-safe identifiers printed
// into QR codes. Codes are random, not sequential: they appear on
// physical media and must not be enumerable.
package shortcode

import (
	"crypto/rand"
	"fmt"
)

// alphabet is base62: unambiguous in URLs, safe without escaping.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// DefaultLength gives ~47 bits of entropy, enough that collisions are
// handled by the unique constraint and a single retry.
const DefaultLength = 8

// Generate returns a random base62 code of length n (DefaultLength if
// n <= 0).
func Generate(n int) (string, error) {
	if n <= 0 {
		n = DefaultLength
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("shortcode: %w", err)
	}

	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out), nil
}

// Valid reports whether s looks like a code this service issued: base62,
// hyphens allowed (seed data uses them), length 1–64.
func Valid(s string) bool {
	if len(s) == 0 || len(s) > 64 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c == '-':
		default:
			return false
		}
	}
	return true
}
