// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package resolver implements the scan-time state machine for short links.
// It is free of HTTP concerns: the caller supplies the looked-
// up record and whether the requesting session already holds an access
// grant, and receives a terminal outcome to present.
//
// Ordering guarantee: the password gate is always evaluated before payload
// dispatch. A malformed or unrecognized design document never surfaces as
// an error — it downgrades to a plain redirect.
package resolver

import (
	"log/slog"

	"qrlink/internal/design"
	"qrlink/internal/models"
)

// State is the terminal state of one scan resolution.
type State int

const (
	// StateNotFound: no record matches the identifier.
	StateNotFound State = iota
	// StatePasswordRequired: the record is gated and the session holds
	// no valid grant.
	StatePasswordRequired
	// StateRedirect: plain redirect to the record's target URL.
	StateRedirect
	// StateTemplate: render the template selected by the design
	// discriminant.
	StateTemplate
)

// FallbackLocation is the redirect target for records without a target URL.
const FallbackLocation = "/"

// Outcome is the result of resolving one scan request.
type Outcome struct {
	State State
	// Location is set for StateRedirect.
	Location string
	// Design is set for StateTemplate; Design.Kind selects the renderer.
	Design design.Design
}

// Resolve runs the state machine for a single scan. rec is nil when the
// lookup found nothing; hasAccess reports whether the session carries a
// valid grant for this record's code.
func Resolve(rec *models.QRCode, hasAccess bool) Outcome {
	if rec == nil {
		return Outcome{State: StateNotFound}
	}

	if rec.Protected() && !hasAccess {
		return Outcome{State: StatePasswordRequired}
	}

	d := design.Parse(rec.Design)
	if d.Kind == design.KindNone {
		if reason := design.Diagnose(rec.Design); reason != "" {
			// Silent downgrade: log for operators, redirect for users.
			slog.Warn("design document not dispatchable, falling back to redirect",
				"code", rec.Code,
				"reason", reason,
			)
		}
		return Outcome{State: StateRedirect, Location: redirectTarget(rec)}
	}

	return Outcome{State: StateTemplate, Design: d}
}

func redirectTarget(rec *models.QRCode) string {
	if rec.TargetURL == "" {
		return FallbackLocation
	}
	return rec.TargetURL
}
