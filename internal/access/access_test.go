package access

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testKey() []byte {
	return []byte("0123456789abcdef0123456789abcdef")
}

// grantCookie issues a grant and returns the Set-Cookie result.
func grantCookie(t *testing.T, g *Gate, code string) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := g.Grant(rec, code); err != nil {
		t.Fatalf("Grant: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	return cookies[0]
}

func TestGrantCheckRoundTrip(t *testing.T) {
	g := NewGate(testKey(), false)
	cookie := grantCookie(t, g, "table-7")

	if cookie.Name != CookiePrefix+"table-7" {
		t.Errorf("cookie name = %q", cookie.Name)
	}
	if cookie.Path != "/q/table-7" {
		t.Errorf("cookie path = %q, want per-code path", cookie.Path)
	}
	if !cookie.HttpOnly {
		t.Error("grant cookie must be HttpOnly")
	}

	r := httptest.NewRequest(http.MethodGet, "/q/table-7", nil)
	r.AddCookie(cookie)
	if !g.Check(r, "table-7") {
		t.Error("valid grant not accepted")
	}
}

func TestCheckWithoutCookie(t *testing.T) {
	g := NewGate(testKey(), false)
	r := httptest.NewRequest(http.MethodGet, "/q/table-7", nil)
	if g.Check(r, "table-7") {
		t.Error("request without a cookie must have no grant")
	}
}

func TestCheckRejectsTamperedCookie(t *testing.T) {
	g := NewGate(testKey(), false)
	cookie := grantCookie(t, g, "table-7")

	// Flip a character in the signed value.
	v := []byte(cookie.Value)
	if v[len(v)/2] == 'A' {
		v[len(v)/2] = 'B'
	} else {
		v[len(v)/2] = 'A'
	}
	cookie.Value = string(v)

	r := httptest.NewRequest(http.MethodGet, "/q/table-7", nil)
	r.AddCookie(cookie)
	if g.Check(r, "table-7") {
		t.Error("tampered cookie accepted")
	}
}

// A grant for one code must never unlock another, even if the cookie is
// replayed under the other code's name.
func TestCheckRejectsCrossCodeGrant(t *testing.T) {
	g := NewGate(testKey(), false)
	cookie := grantCookie(t, g, "code-a")

	replayed := &http.Cookie{Name: CookiePrefix + "code-b", Value: cookie.Value}
	r := httptest.NewRequest(http.MethodGet, "/q/code-b", nil)
	r.AddCookie(replayed)
	if g.Check(r, "code-b") {
		t.Error("grant for code-a unlocked code-b")
	}
}

func TestCheckRejectsForeignKey(t *testing.T) {
	issuer := NewGate(testKey(), false)
	verifier := NewGate([]byte(strings.Repeat("x", 32)), false)

	cookie := grantCookie(t, issuer, "table-7")
	r := httptest.NewRequest(http.MethodGet, "/q/table-7", nil)
	r.AddCookie(cookie)
	if verifier.Check(r, "table-7") {
		t.Error("cookie signed with a different key accepted")
	}
}

func TestGrantSecureFlag(t *testing.T) {
	g := NewGate(testKey(), true)
	cookie := grantCookie(t, g, "c")
	if !cookie.Secure {
		t.Error("secure gate must issue Secure cookies")
	}

	g = NewGate(testKey(), false)
	cookie = grantCookie(t, g, "c")
	if cookie.Secure {
		t.Error("dev gate must not issue Secure cookies")
	}
}
