// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. The tests live in an external package so they can
// stand up the real router against the handler groups. Tests are skipped
// when PostgreSQL or Valkey are unavailable.
package handlers_test

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"qrlink/internal/access"
	"qrlink/internal/cache"
	"qrlink/internal/database"
	"qrlink/internal/handlers"
	"qrlink/internal/render"
	"qrlink/internal/store"
)

const (
	testBaseURL  = "http://qr.test"
	testAPIToken = "test-api-token"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens the test PostgreSQL and runs migrations, skipping when the
// database is unreachable.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "qrlink")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "qrlink")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkey connects to the test Valkey, skipping when unreachable.
func testValkey(t *testing.T) *redis.Client {
	t.Helper()

	client, err := cache.ConnectValkey(
		envOr("VALKEY_HOST", "localhost"),
		envOr("VALKEY_PORT", "6379"),
		os.Getenv("VALKEY_PASSWORD"),
	)
	if err != nil {
		t.Skipf("skipping: valkey not reachable: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return client
}

// testEnv wires the full handler stack against real backing services.
type testEnv struct {
	db        *sql.DB
	qrStore   *store.QRCodeStore
	scanCache *cache.ScanCache
	public    *handlers.Public
	api       *handlers.API
	gate      *access.Gate
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	valkey := testValkey(t)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	qrStore := store.NewQRCodeStore(db)
	scanCache := cache.NewScanCache(valkey, time.Minute)
	gate := access.NewGate([]byte("0123456789abcdef0123456789abcdef"), false)

	return &testEnv{
		db:        db,
		qrStore:   qrStore,
		scanCache: scanCache,
		public:    handlers.NewPublic(renderer, qrStore, gate, scanCache, testBaseURL),
		api:       handlers.NewAPI(qrStore, scanCache, testBaseURL),
		gate:      gate,
	}
}

// cleanCode removes a test record and its cache entries.
func (e *testEnv) cleanCode(t *testing.T, code string) {
	t.Helper()
	t.Cleanup(func() {
		ctx := context.Background()
		e.db.Exec("DELETE FROM qr_codes WHERE code = $1", code)
		e.scanCache.Invalidate(ctx, code)
		e.scanCache.ResetScanCount(ctx, code)
	})
}

// noRedirect returns an http.Client that reports redirects instead of
// following them.
func noRedirect() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
