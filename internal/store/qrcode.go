// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for qrlink entities. Each store
// struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"qrlink/internal/models"
)

// QRCodeStore handles all short-link record database operations.
type QRCodeStore struct {
	db *sql.DB
}

// NewQRCodeStore creates a new QRCodeStore with the given database connection.
func NewQRCodeStore(db *sql.DB) *QRCodeStore {
	return &QRCodeStore{db: db}
}

// FindByCode retrieves a record by its opaque short code. Returns nil if
// not found — the resolver turns that into the not-found state.
func (s *QRCodeStore) FindByCode(code string) (*models.QRCode, error) {
	q := &models.QRCode{}
	err := s.db.QueryRow(`
		SELECT id, code, label, target_url, password_hash, design, scan_count, created_at, updated_at
		FROM qr_codes WHERE code = $1
	`, code).Scan(
		&q.ID, &q.Code, &q.Label, &q.TargetURL, &q.PasswordHash,
		&q.Design, &q.ScanCount, &q.CreatedAt, &q.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find qr code by code: %w", err)
	}
	return q, nil
}

// FindByID retrieves a record by its UUID. Returns nil if not found.
func (s *QRCodeStore) FindByID(id uuid.UUID) (*models.QRCode, error) {
	q := &models.QRCode{}
	err := s.db.QueryRow(`
		SELECT id, code, label, target_url, password_hash, design, scan_count, created_at, updated_at
		FROM qr_codes WHERE id = $1
	`, id).Scan(
		&q.ID, &q.Code, &q.Label, &q.TargetURL, &q.PasswordHash,
		&q.Design, &q.ScanCount, &q.CreatedAt, &q.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find qr code by id: %w", err)
	}
	return q, nil
}

// List returns all records ordered by creation date descending.
func (s *QRCodeStore) List() ([]models.QRCode, error) {
	rows, err := s.db.Query(`
		SELECT id, code, label, target_url, password_hash, design, scan_count, created_at, updated_at
		FROM qr_codes ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list qr codes: %w", err)
	}
	defer rows.Close()

	var items []models.QRCode
	for rows.Next() {
		var q models.QRCode
		if err := rows.Scan(
			&q.ID, &q.Code, &q.Label, &q.TargetURL, &q.PasswordHash,
			&q.Design, &q.ScanCount, &q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan qr code: %w", err)
		}
		items = append(items, q)
	}
	return items, rows.Err()
}

// Create inserts a new record. password is hashed with bcrypt when
// non-empty; design may be nil for plain-redirect codes.
func (s *QRCodeStore) Create(code, label, targetURL, password string, designDoc []byte) (*models.QRCode, error) {
	var hash *string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hs := string(h)
		hash = &hs
	}

	q := &models.QRCode{}
	err := s.db.QueryRow(`
		INSERT INTO qr_codes (code, label, target_url, password_hash, design)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, code, label, target_url, password_hash, design, scan_count, created_at, updated_at
	`, code, label, targetURL, hash, designDoc).Scan(
		&q.ID, &q.Code, &q.Label, &q.TargetURL, &q.PasswordHash,
		&q.Design, &q.ScanCount, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create qr code: %w", err)
	}
	return q, nil
}

// Update modifies label, target URL, and design of an existing record.
// The short code itself is immutable once printed on physical media.
func (s *QRCodeStore) Update(q *models.QRCode) error {
	_, err := s.db.Exec(`
		UPDATE qr_codes SET
			label = $1, target_url = $2, design = $3, updated_at = NOW()
		WHERE id = $4
	`, q.Label, q.TargetURL, q.Design, q.ID)
	if err != nil {
		return fmt.Errorf("update qr code: %w", err)
	}
	return nil
}

// SetPassword replaces the record's password. An empty password removes
// the gate.
func (s *QRCodeStore) SetPassword(id uuid.UUID, password string) error {
	var hash *string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		hs := string(h)
		hash = &hs
	}

	_, err := s.db.Exec(`
		UPDATE qr_codes SET password_hash = $1, updated_at = NOW() WHERE id = $2
	`, hash, id)
	if err != nil {
		return fmt.Errorf("set qr code password: %w", err)
	}
	return nil
}

// Delete removes a record by ID.
func (s *QRCodeStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM qr_codes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete qr code: %w", err)
	}
	return nil
}

// IncrementScans bumps the access counter for a code. Called once per
// resolved scan; failures are the caller's to log, never to surface.
func (s *QRCodeStore) IncrementScans(code string) error {
	_, err := s.db.Exec(`
		UPDATE qr_codes SET scan_count = scan_count + 1 WHERE code = $1
	`, code)
	if err != nil {
		return fmt.Errorf("increment scans: %w", err)
	}
	return nil
}

// CheckPassword verifies a plaintext password against the record's bcrypt
// hash. Unprotected records reject all passwords.
func (s *QRCodeStore) CheckPassword(q *models.QRCode, password string) bool {
	if !q.Protected() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*q.PasswordHash), []byte(password)) == nil
}
