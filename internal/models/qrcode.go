// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persistent entities of the qrlink service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// QRCode is one short-link record. The Code field is the opaque URL-safe
// identifier scanned via /q/{code}; Design holds the raw JSON design
// document (see the design package for its decoded form). Records are
// read-only at scan time except for the scan counter.
type QRCode struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Label        string    `json:"label"`
	TargetURL    string    `json:"target_url"`
	PasswordHash *string   `json:"-"`
	Design       []byte    `json:"design,omitempty"`
	ScanCount    int64     `json:"scan_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Protected returns true if the record requires a password before any
// template render or redirect.
func (q *QRCode) Protected() bool {
	return q.PasswordHash != nil && *q.PasswordHash != ""
}
