package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"covera.app/covera-web/internal/config"
	mw "covera.app/covera-web/internal/middleware"
	"covera.app/covera-web/internal/observability"
	"covera.app/covera-web/internal/site"
)

// newTestRouter builds the same router as serve. upstream, when set, is the edge function base URL.
func newTestRouter(t *testing.T, upstream string) http.Handler {
	t.Helper()
	return newTestServer(t, upstream).routes()
}

func newTestServer(t *testing.T, upstream string) *server {
	t.Helper()
	cfg := &config.Config{
		Env:               "development",
		SiteURL:           "https://covera.app",
		SessionSigningKey: "test-signing-key",
		BlogCacheTTL:      time.Minute,
		RequestTimeout:    5 * time.Second,
		Supabase: config.SupabaseConfig{
			BaseURL: upstream,
			Timeout: 2 * time.Second,
		},
	}
	s, err := newServer(cfg, zap.NewNop(), observability.NewMetrics())
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}
	return s
}

// browser keeps cookies between requests like a real visitor.
type browser struct {
	t       *testing.T
	h       http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, h http.Handler) *browser {
	return &browser{t: t, h: h, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.h.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) csrf() string {
	if c, ok := b.cookies["csrf_token"]; ok {
		return c.Value
	}
	b.t.Fatalf("no csrf_token cookie yet")
	return ""
}

func (b *browser) post(path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	b.t.Helper()
	req := b.postRequest(path, form, htmx)
	return b.do(req)
}

func (b *browser) postRequest(path string, form url.Values, htmx bool) *http.Request {
	form.Set("csrf_token", b.csrf())
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func attrOf(doc *goquery.Document, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return v
}

func contactValues() url.Values {
	return url.Values{
		"name":    {"Dana Reyes"},
		"email":   {"dana@acme-properties.com"},
		"company": {"Acme Properties"},
		"message": {"We manage 300 vendors across 12 buildings."},
	}
}

func demoValues() url.Values {
	return url.Values{
		"name":        {"Dana Reyes"},
		"email":       {"dana@acme-properties.com"},
		"company":     {"Acme Properties"},
		"phone":       {"555-123-4567"},
		"vendorCount": {"201-500"},
	}
}

func TestHealthzOK(t *testing.T) {
	srv := newTestRouter(t, "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "ok" {
		t.Fatalf("expected body 'ok', got %q", got)
	}
}

func TestHomeHeadIsSynchronized(t *testing.T) {
	rec := newBrowser(t, newTestRouter(t, "")).get("/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	doc := parse(t, rec)
	if got := attrOf(doc, `link[rel="canonical"]`, "href"); got != "https://covera.app/" {
		t.Fatalf("canonical = %q", got)
	}
	if got := attrOf(doc, `meta[name="robots"]`, "content"); got != "index, follow" {
		t.Fatalf("robots = %q", got)
	}
	if n := doc.Find("title").Length(); n != 1 {
		t.Fatalf("expected one <title>, got %d", n)
	}
	scripts := doc.Find(`script[type="application/ld+json"]`)
	if scripts.Length() != 1 {
		t.Fatalf("expected one JSON-LD script, got %d", scripts.Length())
	}
	var schema []map[string]any
	if err := json.Unmarshal([]byte(scripts.Text()), &schema); err != nil {
		t.Fatalf("json-ld: %v", err)
	}
	if len(schema) != 3 || schema[0]["@type"] != "Organization" {
		t.Fatalf("unexpected home schema: %v", schema)
	}
	if doc.Find(".post-card").Length() == 0 {
		t.Fatalf("expected latest posts on home page")
	}
}

func TestPricingRendersPlansAndFAQSchema(t *testing.T) {
	doc := parse(t, newBrowser(t, newTestRouter(t, "")).get("/pricing"))
	if got := doc.Find("details.faq-item").Length(); got != len(site.FAQs()) {
		t.Fatalf("expected %d FAQ items, got %d", len(site.FAQs()), got)
	}
	if !strings.Contains(doc.Find("main").Text(), "$99") {
		t.Fatalf("expected Starter price on page")
	}
	ld := doc.Find(`script[type="application/ld+json"]`).Text()
	if !strings.Contains(ld, `"FAQPage"`) {
		t.Fatalf("expected FAQPage schema, got %s", ld)
	}
	if got := doc.Find("title").Text(); got != "Pricing | Covera" {
		t.Fatalf("title = %q", got)
	}
}

func TestBlogPostArticleMetadata(t *testing.T) {
	rec := newBrowser(t, newTestRouter(t, "")).get("/blog/what-is-a-certificate-of-insurance")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	doc := parse(t, rec)
	if got := attrOf(doc, `meta[property="og:type"]`, "content"); got != "article" {
		t.Fatalf("og:type = %q", got)
	}
	if got := attrOf(doc, `link[rel="canonical"]`, "href"); got != "https://covera.app/blog/what-is-a-certificate-of-insurance" {
		t.Fatalf("canonical = %q", got)
	}
	ld := doc.Find(`script[type="application/ld+json"]`).Text()
	for _, want := range []string{`"Article"`, `"BreadcrumbList"`} {
		if !strings.Contains(ld, want) {
			t.Fatalf("expected %s in json-ld: %s", want, ld)
		}
	}
	if doc.Find("nav.breadcrumbs li").Length() != 3 {
		t.Fatalf("expected breadcrumbs")
	}
	if doc.Find(".prose").Length() != 1 {
		t.Fatalf("expected article body")
	}
}

func TestBlogIndexFiltersByCategory(t *testing.T) {
	doc := parse(t, newBrowser(t, newTestRouter(t, "")).get("/blog?category=Industries"))
	cards := doc.Find(".post-card")
	if cards.Length() == 0 {
		t.Fatalf("expected posts in Industries")
	}
	cards.Each(func(_ int, s *goquery.Selection) {
		if got := strings.TrimSpace(s.Find(".eyebrow").Text()); got != "Industries" {
			t.Fatalf("unexpected category %q", got)
		}
	})
}

func TestUnknownPagesRenderNoindex404(t *testing.T) {
	b := newBrowser(t, newTestRouter(t, ""))
	for _, path := range []string{"/blog/no-such-post", "/industries/no-such-industry", "/no-such-page"} {
		rec := b.get(path)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
		if got := attrOf(parse(t, rec), `meta[name="robots"]`, "content"); got != "noindex, nofollow" {
			t.Fatalf("%s: robots = %q", path, got)
		}
	}
}

func TestIndustryLandingServiceSchema(t *testing.T) {
	doc := parse(t, newBrowser(t, newTestRouter(t, "")).get("/industries/construction"))
	ld := doc.Find(`script[type="application/ld+json"]`).Text()
	if !strings.Contains(ld, `"Service"`) || !strings.Contains(ld, `"BreadcrumbList"`) {
		t.Fatalf("unexpected json-ld: %s", ld)
	}
	if got := attrOf(doc, `link[rel="canonical"]`, "href"); got != "https://covera.app/industries/construction" {
		t.Fatalf("canonical = %q", got)
	}
}

func TestContactSuccessFlashShownOnce(t *testing.T) {
	b := newBrowser(t, newTestRouter(t, ""))
	b.get("/contact")

	rec := b.post("/contact", contactValues(), false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/contact" {
		t.Fatalf("Location = %q", loc)
	}

	doc := parse(t, b.get("/contact"))
	if got := doc.Find("#toast-region .toast").Text(); !strings.Contains(got, contactSent) {
		t.Fatalf("expected success toast, got %q", got)
	}
	if got := attrOf(doc, `#contact-form input[name="name"]`, "value"); got != "" {
		t.Fatalf("expected empty form, name=%q", got)
	}

	doc = parse(t, b.get("/contact"))
	if n := doc.Find("#toast-region .toast").Length(); n != 0 {
		t.Fatalf("flash must be shown once, found %d toasts", n)
	}
}

func TestContactHTMXSuccessClearsForm(t *testing.T) {
	b := newBrowser(t, newTestRouter(t, ""))
	b.get("/contact")

	rec := b.post("/contact", contactValues(), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	doc := parse(t, rec)
	if doc.Find("#contact-form").Length() != 1 {
		t.Fatalf("expected form fragment, got %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "<title>") {
		t.Fatalf("fragment must not carry a document head")
	}
	if got := attrOf(doc, `input[name="email"]`, "value"); got != "" {
		t.Fatalf("expected cleared email, got %q", got)
	}
	if got := doc.Find(".toast-success").Text(); !strings.Contains(got, contactSent) {
		t.Fatalf("expected success toast, got %q", got)
	}
}

func TestDemoHTMXSuccessClosesModal(t *testing.T) {
	var got map[string]any
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/demo-request" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	defer upstream.Close()

	b := newBrowser(t, newTestRouter(t, upstream.URL))
	page := parse(t, b.get("/pricing"))
	if page.Find(`dialog[data-modal="demo"] form#demo-form`).Length() != 1 {
		t.Fatalf("expected the demo form inside the demo dialog")
	}
	rec := b.post("/demo", demoValues(), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if trig := rec.Header().Get("HX-Trigger"); trig != "demo:close" {
		t.Fatalf("HX-Trigger = %q", trig)
	}
	if got["vendorCount"] != "201-500" || got["phone"] != "(555) 123-4567" {
		t.Fatalf("unexpected upstream payload: %v", got)
	}
}

func TestDemoUpstreamErrorKeepsValues(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"Mailbox unavailable"}`)
	}))
	defer upstream.Close()

	b := newBrowser(t, newTestRouter(t, upstream.URL))
	b.get("/demo")
	rec := b.post("/demo", demoValues(), true)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d; body=%s", rec.Code, rec.Body.String())
	}
	doc := parse(t, rec)
	if got := doc.Find(".toast-error").Text(); !strings.Contains(got, "Mailbox unavailable") {
		t.Fatalf("expected upstream message in toast, got %q", got)
	}
	if got := attrOf(doc, `input[name="name"]`, "value"); got != "Dana Reyes" {
		t.Fatalf("expected name kept, got %q", got)
	}
	if rec.Header().Get("HX-Trigger") != "" {
		t.Fatalf("modal must stay open on failure")
	}
}

func TestContactValidationReturns422(t *testing.T) {
	b := newBrowser(t, newTestRouter(t, ""))
	b.get("/contact")
	form := contactValues()
	form.Set("email", "not-an-email")

	rec := b.post("/contact", form, true)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	doc := parse(t, rec)
	if doc.Find("#contact-form-email-error").Length() != 1 {
		t.Fatalf("expected email error, got %s", rec.Body.String())
	}
	if got := attrOf(doc, `input[name="email"]`, "value"); got != "not-an-email" {
		t.Fatalf("expected value kept, got %q", got)
	}
}

func TestConcurrentSubmissionIsRejected(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		_, _ = io.WriteString(w, `{}`)
	}))
	defer upstream.Close()

	b := newBrowser(t, newTestRouter(t, upstream.URL))
	b.get("/contact")

	first := b.postRequest("/contact", contactValues(), true)
	for _, c := range b.cookies {
		first.AddCookie(c)
	}
	done := make(chan int)
	go func() {
		rec := httptest.NewRecorder()
		b.h.ServeHTTP(rec, first)
		done <- rec.Code
	}()

	<-started
	rec := b.post("/contact", contactValues(), true)
	close(release)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 while first submission runs, got %d", rec.Code)
	}
	if code := <-done; code != http.StatusOK {
		t.Fatalf("first submission: expected 200, got %d", code)
	}
}

func TestPhoneFormatFragment(t *testing.T) {
	b := newBrowser(t, newTestRouter(t, ""))
	b.get("/demo")
	rec := b.post("/api/phone/format", url.Values{"phone": {"5551234567"}}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	doc := parse(t, rec)
	if got := attrOf(doc, `#phone-field input`, "value"); got != "(555) 123-4567" {
		t.Fatalf("formatted phone = %q", got)
	}
}

func TestPostWithoutCSRFIsForbidden(t *testing.T) {
	srv := newTestRouter(t, "")
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(contactValues().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestSessionCookieIsIssued(t *testing.T) {
	b := newBrowser(t, newTestRouter(t, ""))
	b.get("/")
	if _, ok := b.cookies["COVERA_WEB_SESSION"]; !ok {
		t.Fatalf("expected COVERA_WEB_SESSION cookie, got %v", b.cookies)
	}
}

func TestSitemapAndRobots(t *testing.T) {
	srv := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	body := rec.Body.String()
	for _, want := range []string{
		"<loc>https://covera.app/</loc>",
		"<loc>https://covera.app/industries/construction</loc>",
		"<loc>https://covera.app/solutions/coi-tracking</loc>",
		"<loc>https://covera.app/blog/what-is-a-certificate-of-insurance</loc>",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("sitemap missing %s", want)
		}
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	if !strings.Contains(rec.Body.String(), "Disallow: /") {
		t.Fatalf("non-production robots.txt must disallow crawling: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Sitemap: https://covera.app/sitemap.xml") {
		t.Fatalf("robots.txt missing sitemap: %s", rec.Body.String())
	}
}

func TestMetricsCountRequests(t *testing.T) {
	srv := newTestRouter(t, "")
	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about", nil))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{"covera_web_http_requests_total", "covera_web_head_syncs_total"} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics missing %s", want)
		}
	}
}

func TestAssetsServedWithETag(t *testing.T) {
	srv := newTestRouter(t, "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("ETag") == "" {
		t.Fatalf("expected ETag header")
	}
}

func TestServerErrorCarriesRequestID(t *testing.T) {
	s := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	req = req.WithContext(mw.WithHTMX(mw.WithRequestID(req.Context(), "web/abc-000001"), true))
	rec := httptest.NewRecorder()

	s.serverError(rec, req, errors.New("content unavailable"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON error for htmx, got %q", rec.Body.String())
	}
	if body.Error != "Internal Server Error (request web/abc-000001)" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestSitemapCommandPrintsURLSet(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"sitemap", "--env-file", "testdata-missing.env"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("sitemap: %v", err)
	}
	if !strings.Contains(out.String(), "<urlset") {
		t.Fatalf("expected urlset, got %s", out.String())
	}
}
