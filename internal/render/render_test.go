package render

import (
	"strings"
	"testing"

	"qrlink/internal/design"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestNewParsesAllPages(t *testing.T) {
	r := newRenderer(t)
	for _, name := range pageNames {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := newRenderer(t)
	if _, err := r.Render("nope", &PageData{}); err == nil {
		t.Error("expected an error for an unknown template")
	}
}

func TestLinkListExcludesInactive(t *testing.T) {
	r := newRenderer(t)
	doc := &design.LinkListDoc{
		Profile: design.Profile{Title: "My Page"},
		Links: []design.LinkItem{
			{Text: "Shop", URL: "https://shop.example", Active: true},
			{Text: "Retired", URL: "https://old.example", Active: false},
		},
		Socials: []design.SocialItem{
			{Platform: "instagram", URL: "https://ig.example/x", Active: true},
			{Platform: "facebook", URL: "https://fb.example/x", Active: false},
		},
	}

	out, err := r.Render("linklist", &PageData{Title: "My Page", Data: doc})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "Shop") || !strings.Contains(html, "https://shop.example") {
		t.Error("active link missing from output")
	}
	// Inactive entries are excluded entirely, not hidden.
	if strings.Contains(html, "Retired") || strings.Contains(html, "https://old.example") {
		t.Error("inactive link leaked into output")
	}
	if !strings.Contains(html, "https://ig.example/x") {
		t.Error("active social missing")
	}
	if strings.Contains(html, "https://fb.example/x") {
		t.Error("inactive social leaked into output")
	}
}

func TestLinkListWelcomeSplash(t *testing.T) {
	r := newRenderer(t)
	doc := &design.LinkListDoc{
		Profile: design.Profile{Title: "T"},
		Welcome: &design.Welcome{Image: "https://img.example/w.png", Timeout: 3},
	}

	out, err := r.Render("linklist", &PageData{Data: doc})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), `id="welcome"`) {
		t.Error("welcome splash missing")
	}

	doc.Welcome = nil
	out, err = r.Render("linklist", &PageData{Data: doc})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), `id="welcome"`) {
		t.Error("welcome splash rendered without a welcome document")
	}
}

func TestMenuAccordion(t *testing.T) {
	r := newRenderer(t)
	doc := &design.MenuDoc{
		Restaurant: design.Restaurant{Name: "Trattoria"},
		Categories: []design.Category{
			{Name: "Starters", Items: []design.MenuItem{
				{Name: "Bruschetta", Price: "6.50", Allergens: []string{"gluten", "made-up"}},
			}},
			{Name: "Mains", Items: []design.MenuItem{
				{Name: "Risotto", Price: "14.00"},
			}},
		},
	}

	out, err := r.Render("menu", &PageData{Data: doc})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	// Category sections share a details name so the browser keeps at most
	// one open at a time.
	if strings.Count(html, `name="menu-category"`) != 2 {
		t.Errorf("expected 2 exclusive accordion sections, got %d",
			strings.Count(html, `name="menu-category"`))
	}
	if !strings.Contains(html, "Starters") || !strings.Contains(html, "Mains") {
		t.Error("category names missing")
	}
	if !strings.Contains(html, "Bruschetta") || !strings.Contains(html, "6.50") {
		t.Error("menu item missing")
	}

	// Allergens: vocabulary entries badge, unknown tags are dropped.
	if !strings.Contains(html, "Gluten") {
		t.Error("known allergen badge missing")
	}
	if strings.Contains(html, "made-up") {
		t.Error("unknown allergen tag leaked into output")
	}

	// No hours, no contact: those sections are omitted.
	if strings.Contains(html, "Opening hours") {
		t.Error("hours section rendered without hours")
	}
	if strings.Contains(html, "Contact") {
		t.Error("contact section rendered for an empty contact")
	}
}

func TestMenuConditionalSections(t *testing.T) {
	r := newRenderer(t)
	doc := &design.MenuDoc{
		Restaurant: design.Restaurant{Name: "Trattoria"},
		Hours: []design.DayHours{
			{Day: "Monday", Open: "10:00", Close: "22:00"},
			{Day: "Tuesday", Closed: true},
		},
		Contact: design.Contact{Phone: "+40 700 000 001"},
	}

	out, err := r.Render("menu", &PageData{Data: doc})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "Opening hours") || !strings.Contains(html, "10:00") {
		t.Error("hours section missing")
	}
	if !strings.Contains(html, "Closed") {
		t.Error("closed day not marked")
	}
	// html/template escapes the href in URL context: "+" becomes &#43; and
	// spaces become %20.
	if !strings.Contains(html, "tel:&#43;40%20700%20000%20001") {
		t.Error("contact phone link missing")
	}
	if !strings.Contains(html, "700 000 001") {
		t.Error("contact phone text missing")
	}
}

func TestCouponPage(t *testing.T) {
	r := newRenderer(t)
	doc := &design.CouponDoc{
		Title:      "Autumn sale",
		Code:       "FALL20",
		Discount:   "-20%",
		ValidUntil: "2026-10-31",
		ButtonText: "Shop now",
		ButtonURL:  "https://shop.example",
	}

	out, err := r.Render("coupon", &PageData{Data: doc})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	for _, want := range []string{"Autumn sale", "FALL20", "-20%", "Valid until 2026-10-31", "Shop now"} {
		if !strings.Contains(html, want) {
			t.Errorf("coupon output missing %q", want)
		}
	}
}

func TestBusinessPage(t *testing.T) {
	r := newRenderer(t)
	doc := &design.BusinessDoc{
		Name:    "Acme SRL",
		Tagline: "We make things",
		Contact: design.Contact{Website: "https://acme.example"},
		Socials: []design.SocialItem{{Platform: "linkedin", URL: "https://li.example/acme", Active: true}},
	}

	out, err := r.Render("business", &PageData{Data: doc})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "Acme SRL") || !strings.Contains(html, "We make things") {
		t.Error("header missing")
	}
	if !strings.Contains(html, "https://acme.example") {
		t.Error("contact website missing")
	}
	if !strings.Contains(html, "https://li.example/acme") {
		t.Error("social link missing")
	}
}

func TestPasswordPage(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Render("password", &PageData{Code: "locked-1"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `action="/q/locked-1/unlock"`) {
		t.Error("form does not post to the unlock route")
	}
	if strings.Contains(html, "Wrong password") {
		t.Error("error message shown without the error flag")
	}

	out, err = r.Render("password", &PageData{Code: "locked-1", Error: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "Wrong password") {
		t.Error("error flag did not surface the message")
	}
}

// Description fields pass through the markdown pipeline: formatting works,
// raw HTML does not.
func TestMarkdownDescriptions(t *testing.T) {
	r := newRenderer(t)
	doc := &design.MenuDoc{
		Restaurant: design.Restaurant{
			Name:        "X",
			Description: "fresh **pasta** <script>alert(1)</script>",
		},
	}

	out, err := r.Render("menu", &PageData{Data: doc})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "<strong>pasta</strong>") {
		t.Error("markdown emphasis not rendered")
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("raw HTML passed through a description")
	}
}

func TestFontStack(t *testing.T) {
	if got := fontStack("serif"); !strings.Contains(got, "Georgia") {
		t.Errorf("serif stack = %q", got)
	}
	if got := fontStack("unknown-font"); !strings.Contains(got, "sans-serif") {
		t.Errorf("fallback stack = %q", got)
	}
}
