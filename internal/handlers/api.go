// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"qrlink/internal/cache"
	"qrlink/internal/design"
	"qrlink/internal/models"
	"qrlink/internal/shortcode"
	"qrlink/internal/store"
)

// API is the token-guarded management surface. It speaks JSON and is meant
// for the dashboard frontend and automation, not for scanners.
type API struct {
	qrStore   *store.QRCodeStore
	scanCache *cache.ScanCache
	baseURL   string
}

// NewAPI creates a new API handler group.
func NewAPI(qrStore *store.QRCodeStore, scanCache *cache.ScanCache, baseURL string) *API {
	return &API{qrStore: qrStore, scanCache: scanCache, baseURL: baseURL}
}

// codeRequest is the JSON payload for create and update. A non-empty
// Password sets or rotates the gate; ClearPassword removes it. Sending
// both clears.
type codeRequest struct {
	Code          string          `json:"code,omitempty"`
	Label         string          `json:"label"`
	TargetURL     string          `json:"target_url"`
	Password      string          `json:"password,omitempty"`
	ClearPassword bool            `json:"clear_password,omitempty"`
	Design        json.RawMessage `json:"design,omitempty"`
}

// codeResponse is the JSON shape of a QR code record. The password hash is
// never exposed; Protected tells the client whether a gate exists.
type codeResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Label     string          `json:"label"`
	TargetURL string          `json:"target_url"`
	Protected bool            `json:"protected"`
	Design    json.RawMessage `json:"design,omitempty"`
	ScanCount int64           `json:"scan_count"`
	ScanURL   string          `json:"scan_url"`
	ImageURL  string          `json:"image_url"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) response(ctx context.Context, q *models.QRCode) codeResponse {
	// The fast Valkey counter can run ahead of the durable one when a DB
	// increment fails mid-scan; report whichever is higher.
	count := q.ScanCount
	if hits := a.scanCache.ScanCount(ctx, q.Code); hits > count {
		count = hits
	}

	return codeResponse{
		ID:        q.ID.String(),
		Code:      q.Code,
		Label:     q.Label,
		TargetURL: q.TargetURL,
		Protected: q.Protected(),
		Design:    json.RawMessage(q.Design),
		ScanCount: count,
		ScanURL:   a.baseURL + "/q/" + q.Code,
		ImageURL:  a.baseURL + "/q/" + q.Code + "/image",
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// List returns all codes, newest first.
func (a *API) List(w http.ResponseWriter, r *http.Request) {
	codes, err := a.qrStore.List()
	if err != nil {
		slog.Error("list qr codes failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	out := make([]codeResponse, 0, len(codes))
	for i := range codes {
		out = append(out, a.response(r.Context(), &codes[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create registers a new code. When no code is supplied a random short code
// is generated. The design document is stored as provided; an unreadable one
// only downgrades scan-time rendering, it never blocks creation.
func (a *API) Create(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if req.TargetURL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "target_url is required"})
		return
	}

	code := req.Code
	if code == "" {
		generated, err := shortcode.Generate(shortcode.DefaultLength)
		if err != nil {
			slog.Error("short code generation failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		code = generated
	} else if !shortcode.Valid(code) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "code must be 1-64 characters of letters, digits, or hyphens"})
		return
	}

	if diag := design.Diagnose(req.Design); diag != "" {
		slog.Warn("design document stored with issues", "code", code, "reason", diag)
	}

	created, err := a.qrStore.Create(code, req.Label, req.TargetURL, req.Password, req.Design)
	if err != nil {
		slog.Error("create qr code failed", "error", err, "code", code)
		writeJSON(w, http.StatusConflict, errorResponse{Error: "could not create code (duplicate?)"})
		return
	}

	writeJSON(w, http.StatusCreated, a.response(r.Context(), created))
}

// Get returns one code by id.
func (a *API) Get(w http.ResponseWriter, r *http.Request) {
	rec, ok := a.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, a.response(r.Context(), rec))
}

// Update replaces label, target, design, and optionally the password of a
// code. The short code itself is immutable: printed materials depend on it.
func (a *API) Update(w http.ResponseWriter, r *http.Request) {
	rec, ok := a.lookup(w, r)
	if !ok {
		return
	}

	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if req.TargetURL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "target_url is required"})
		return
	}

	if diag := design.Diagnose(req.Design); diag != "" {
		slog.Warn("design document stored with issues", "code", rec.Code, "reason", diag)
	}

	rec.Label = req.Label
	rec.TargetURL = req.TargetURL
	rec.Design = req.Design

	if err := a.qrStore.Update(rec); err != nil {
		slog.Error("update qr code failed", "error", err, "id", rec.ID)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	// clear_password wins over password: SetPassword with an empty value
	// drops the gate entirely.
	if req.ClearPassword || req.Password != "" {
		newPassword := req.Password
		if req.ClearPassword {
			newPassword = ""
		}
		if err := a.qrStore.SetPassword(rec.ID, newPassword); err != nil {
			slog.Error("set password failed", "error", err, "id", rec.ID)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
	}

	a.scanCache.Invalidate(r.Context(), rec.Code)

	updated, err := a.qrStore.FindByID(rec.ID)
	if err != nil || updated == nil {
		slog.Error("reload qr code failed", "error", err, "id", rec.ID)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, a.response(r.Context(), updated))
}

// Delete removes a code. Scans of the printed artifact will 404 afterwards.
func (a *API) Delete(w http.ResponseWriter, r *http.Request) {
	rec, ok := a.lookup(w, r)
	if !ok {
		return
	}

	if err := a.qrStore.Delete(rec.ID); err != nil {
		slog.Error("delete qr code failed", "error", err, "id", rec.ID)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	a.scanCache.Invalidate(r.Context(), rec.Code)
	a.scanCache.ResetScanCount(r.Context(), rec.Code)
	w.WriteHeader(http.StatusNoContent)
}

// lookup resolves the {id} URL parameter to a record, writing the error
// response itself on failure.
func (a *API) lookup(w http.ResponseWriter, r *http.Request) (*models.QRCode, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return nil, false
	}

	rec, err := a.qrStore.FindByID(id)
	if err != nil {
		slog.Error("find qr code failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return nil, false
	}
	if rec == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return nil, false
	}
	return rec, true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
