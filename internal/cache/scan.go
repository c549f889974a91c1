// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// scan.go provides a Valkey-backed cache of rendered scan pages plus scan
// counters. Only ungated codes are cached: password-prompt pages and
// anything behind a grant check must always hit the resolver.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// scanKeyPrefix is the Valkey key prefix for cached scan pages.
	scanKeyPrefix = "scan:"

	// hitsKeyPrefix is the Valkey key prefix for per-code scan counters.
	hitsKeyPrefix = "hits:"

	// DefaultScanTTL is how long a rendered scan page stays cached.
	DefaultScanTTL = 5 * time.Minute
)

// ScanCache manages rendered scan page HTML and scan counters in Valkey.
type ScanCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScanCache creates a scan cache backed by the given Valkey client.
func NewScanCache(client *redis.Client, ttl time.Duration) *ScanCache {
	if ttl == 0 {
		ttl = DefaultScanTTL
	}
	return &ScanCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a code. Returns false on miss.
func (sc *ScanCache) Get(ctx context.Context, code string) ([]byte, bool) {
	val, err := sc.client.Get(ctx, scanKeyPrefix+code).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("scan cache get error", "code", code, "error", err)
		return nil, false
	}
	slog.Debug("scan cache hit", "code", code)
	return val, true
}

// Set stores rendered HTML for a code with the configured TTL.
func (sc *ScanCache) Set(ctx context.Context, code string, html []byte) {
	if err := sc.client.Set(ctx, scanKeyPrefix+code, html, sc.ttl).Err(); err != nil {
		slog.Warn("scan cache set error", "code", code, "error", err)
	}
}

// Invalidate removes the cached page for a code. Called on every record
// update and delete so stale designs never outlive an edit.
func (sc *ScanCache) Invalidate(ctx context.Context, code string) {
	if err := sc.client.Del(ctx, scanKeyPrefix+code).Err(); err != nil {
		slog.Warn("scan cache invalidate error", "code", code, "error", err)
	}
	slog.Debug("scan cache invalidated", "code", code)
}

// CountScan bumps the fast per-code scan counter. The durable counter
// lives in PostgreSQL; this one feeds dashboards without a DB write on
// the hot path.
func (sc *ScanCache) CountScan(ctx context.Context, code string) {
	if err := sc.client.Incr(ctx, hitsKeyPrefix+code).Err(); err != nil {
		slog.Warn("scan counter error", "code", code, "error", err)
	}
}

// ResetScanCount drops the fast counter for a code. Called on record
// delete so a later code with the same name starts from zero.
func (sc *ScanCache) ResetScanCount(ctx context.Context, code string) {
	if err := sc.client.Del(ctx, hitsKeyPrefix+code).Err(); err != nil {
		slog.Warn("scan counter reset error", "code", code, "error", err)
	}
}

// ScanCount reads the fast per-code counter. Missing keys read as zero.
func (sc *ScanCache) ScanCount(ctx context.Context, code string) int64 {
	n, err := sc.client.Get(ctx, hitsKeyPrefix+code).Int64()
	if err != nil && err != redis.Nil {
		slog.Warn("scan counter read error", "code", code, "error", err)
	}
	return n
}
