// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers groups the HTTP handlers of the qrlink server: the
// public scan surface and the token-guarded management API.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"qrlink/internal/access"
	"qrlink/internal/cache"
	"qrlink/internal/design"
	"qrlink/internal/models"
	"qrlink/internal/render"
	"qrlink/internal/resolver"
	"qrlink/internal/store"
)

// Public groups handlers for the scan-time surface: resolution, password
// unlock, and the PNG artifact. It checks the Valkey scan cache before
// invoking the resolver for ungated codes.
type Public struct {
	renderer  *render.Renderer
	qrStore   *store.QRCodeStore
	gate      *access.Gate
	scanCache *cache.ScanCache
	baseURL   string
}

// NewPublic creates a new Public handler group. baseURL is the absolute
// origin encoded into generated QR payloads.
func NewPublic(renderer *render.Renderer, qrStore *store.QRCodeStore, gate *access.Gate, scanCache *cache.ScanCache, baseURL string) *Public {
	return &Public{
		renderer:  renderer,
		qrStore:   qrStore,
		gate:      gate,
		scanCache: scanCache,
		baseURL:   baseURL,
	}
}

// templateNames maps design discriminants to page templates.
var templateNames = map[design.Kind]string{
	design.KindLinkList:    "linklist",
	design.KindSocialMedia: "linklist",
	design.KindMenu:        "menu",
	design.KindBusiness:    "business",
	design.KindCoupon:      "coupon",
}

// Scan resolves one scan request: lookup, password gate, then dispatch to
// a template or a plain redirect.
func (p *Public) Scan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	rec, err := p.qrStore.FindByCode(code)
	if err != nil {
		slog.Error("find qr code failed", "error", err, "code", code)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if rec == nil {
		p.renderer.Page(w, "notfound", http.StatusNotFound, &render.PageData{
			Title: "Not found",
		})
		return
	}

	// Gated codes are never served from cache: the grant check must run
	// on every request.
	if !rec.Protected() {
		if cached, ok := p.scanCache.Get(ctx, code); ok {
			p.countScan(ctx, code)
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	outcome := resolver.Resolve(rec, p.gate.Check(r, code))

	switch outcome.State {
	case resolver.StatePasswordRequired:
		p.renderer.Page(w, "password", http.StatusOK, &render.PageData{
			Title: "Protected code",
			Code:  code,
		})

	case resolver.StateRedirect:
		p.countScan(ctx, code)
		http.Redirect(w, r, outcome.Location, http.StatusFound)

	case resolver.StateTemplate:
		p.countScan(ctx, code)
		name := templateNames[outcome.Design.Kind]
		data := &render.PageData{
			Title: pageTitle(rec, outcome.Design),
			Code:  code,
			Data:  documentFor(outcome.Design),
		}

		out, err := p.renderer.Render(name, data)
		if err != nil {
			// Renderer failure degrades to the redirect path, mirroring
			// the malformed-payload behavior.
			slog.Error("template render failed", "error", err, "code", code, "kind", outcome.Design.Kind)
			http.Redirect(w, r, redirectFallback(rec), http.StatusFound)
			return
		}

		if !rec.Protected() {
			p.scanCache.Set(ctx, code, out)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(out)

	default:
		p.renderer.Page(w, "notfound", http.StatusNotFound, &render.PageData{
			Title: "Not found",
		})
	}
}

// Unlock processes the password form. Success issues the grant cookie and
// retries resolution via redirect; failure re-renders the prompt with the
// error flag. There is no attempt counting on this route.
func (p *Public) Unlock(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	rec, err := p.qrStore.FindByCode(code)
	if err != nil {
		slog.Error("find qr code failed", "error", err, "code", code)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if rec == nil {
		p.renderer.Page(w, "notfound", http.StatusNotFound, &render.PageData{
			Title: "Not found",
		})
		return
	}

	if !p.qrStore.CheckPassword(rec, r.FormValue("password")) {
		p.renderer.Page(w, "password", http.StatusOK, &render.PageData{
			Title: "Protected code",
			Code:  code,
			Error: true,
		})
		return
	}

	if err := p.gate.Grant(w, code); err != nil {
		slog.Error("grant access failed", "error", err, "code", code)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/q/"+code, http.StatusSeeOther)
}

// countScan records the access in both the fast Valkey counter and the
// durable PostgreSQL counter. Failures are logged, never surfaced.
func (p *Public) countScan(ctx context.Context, code string) {
	p.scanCache.CountScan(ctx, code)
	if err := p.qrStore.IncrementScans(code); err != nil {
		slog.Warn("scan counter update failed", "error", err, "code", code)
	}
}

// pageTitle picks the page <title> from the document, falling back to the
// record label.
func pageTitle(rec *models.QRCode, d design.Design) string {
	switch {
	case (d.Kind == design.KindLinkList || d.Kind == design.KindSocialMedia) && d.LinkList != nil && d.LinkList.Profile.Title != "":
		return d.LinkList.Profile.Title
	case d.Kind == design.KindMenu && d.Menu != nil && d.Menu.Restaurant.Name != "":
		return d.Menu.Restaurant.Name
	case d.Kind == design.KindBusiness && d.Business != nil && d.Business.Name != "":
		return d.Business.Name
	case d.Kind == design.KindCoupon && d.Coupon != nil && d.Coupon.Title != "":
		return d.Coupon.Title
	}
	if rec.Label != "" {
		return rec.Label
	}
	return rec.Code
}

// documentFor returns the variant document for the dispatch kind.
func documentFor(d design.Design) any {
	switch d.Kind {
	case design.KindLinkList, design.KindSocialMedia:
		return d.LinkList
	case design.KindMenu:
		return d.Menu
	case design.KindBusiness:
		return d.Business
	case design.KindCoupon:
		return d.Coupon
	}
	return nil
}

// redirectFallback mirrors the resolver's redirect target rule.
func redirectFallback(rec *models.QRCode) string {
	if rec.TargetURL == "" {
		return resolver.FallbackLocation
	}
	return rec.TargetURL
}
