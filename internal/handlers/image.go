// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"qrlink/internal/design"
	"qrlink/internal/qr"
	"qrlink/internal/render"
)

// Image serves the styled QR PNG for a code. The encoded payload is always
// the scan URL of this server, never the raw target, so the gate and the
// scan counter see every visit.
func (p *Public) Image(w http.ResponseWriter, r *http.Request) {
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

	sizePx := 0
	if v := r.URL.Query().Get("size"); v != "" {
		sizePx, _ = strconv.Atoi(v)
	}

	st := qr.FromDesign(design.ParseStyle(rec.Design))
	payload := p.baseURL + "/q/" + rec.Code

	out, err := qr.RenderPNG(payload, st, qr.ClampSize(sizePx))
	if err != nil {
		slog.Error("qr render failed", "error", err, "code", code)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if r.URL.Query().Has("download") {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.Code+".png"))
	}
	w.Write(out)
}
