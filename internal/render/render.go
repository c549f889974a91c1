// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML rendering for the public scan-time pages:
// the four template types plus the password prompt and not-found views.
// Each renderer is a pure function of its design document; templates make
// no network calls and mutate nothing.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"qrlink/internal/design"
	"qrlink/internal/markdown"
)

//go:embed templates/public/*.html
var publicFS embed.FS

// pageNames lists the page templates paired with the base layout.
var pageNames = []string{
	"linklist",
	"menu",
	"business",
	"coupon",
	"password",
	"notfound",
}

// PageData holds all data passed to public templates.
type PageData struct {
	Title string
	// Code is the short code of the record being presented; used by the
	// password form action and the artifact download link.
	Code string
	// Error is the wrong-password flag for the prompt page.
	Error bool
	// Data is the page-specific design document.
	Data any
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses all public templates from the embedded filesystem. Each page
// template is paired with the base layout.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// markdown renders a description field; on parse failure the raw
		// text is shown escaped instead.
		"markdown": func(src string) template.HTML {
			out, err := markdown.ToHTML(src)
			if err != nil {
				return template.HTML(template.HTMLEscapeString(src))
			}
			return template.HTML(out)
		},
		// platform resolves a social platform id against the catalog.
		"platform": design.PlatformFor,
		// allergens filters item tags down to the fixed vocabulary.
		"allergens": design.KnownAllergens,
		// fontStack maps a document font id to a CSS font stack.
		"fontStack": fontStack,
	}

	r := &Renderer{templates: make(map[string]*template.Template)}

	for _, name := range pageNames {
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			publicFS, "templates/public/base.html", "templates/public/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Render executes a page template into bytes, for caching and writing.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders a template straight to the response with the given status.
func (rn *Renderer) Page(w http.ResponseWriter, name string, status int, data *PageData) {
	out, err := rn.Render(name, data)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(out)
}

// fontStack maps the small set of studio font ids to web-safe CSS stacks.
func fontStack(id string) string {
	switch design.Normalize(id) {
	case "serif":
		return "Georgia, 'Times New Roman', serif"
	case "mono":
		return "'SF Mono', 'Fira Code', monospace"
	case "rounded":
		return "'Trebuchet MS', Verdana, sans-serif"
	default:
		return "-apple-system, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif"
	}
}
