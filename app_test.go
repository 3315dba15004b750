package portfolio_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaac-munyaka/portfolio"
	"github.com/isaac-munyaka/portfolio/views"
)

const dashboard = "/images/dashboard.png"

func newTestApp(t *testing.T, opts ...portfolio.Option) *portfolio.App {
	t.Helper()
	cfg := portfolio.SiteConfig{
		URL:           "https://example.com",
		SessionSecret: "test-secret",
	}
	opts = append([]portfolio.Option{portfolio.WithStaticDir(t.TempDir())}, opts...)
	app := portfolio.New(cfg, views.Default(), opts...)
	require.NoError(t, app.Setup())
	t.Cleanup(func() { app.Close() })
	return app
}

// browser replays cookies between requests like a real client.
type browser struct {
	t       *testing.T
	app     *portfolio.App
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, app *portfolio.App) *browser {
	return &browser{t: t, app: app, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.app.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) csrf() string {
	c, ok := b.cookies["_csrf"]
	require.True(b.t, ok, "no CSRF cookie issued")
	return c.Value
}

func (b *browser) post(path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	form.Set("_csrf", b.csrf())
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return b.do(req)
}

func (b *browser) state() (bool, string) {
	rec := b.get("/lightbox/")
	require.Equal(b.t, http.StatusOK, rec.Code)
	var body struct {
		Open  bool   `json:"open"`
		Image string `json:"image"`
	}
	require.NoError(b.t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Open, body.Image
}

func TestHomePage(t *testing.T) {
	b := newBrowser(t, newTestApp(t))

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, "Isaac Munyaka")
	assert.Contains(t, body, "Skills &amp; Tools")
	for _, title := range []string{"Closed Captions", "Plotly Dashboards", "Capstone Group 4", "Phase 4", "My Book Recommender System"} {
		assert.Contains(t, body, title)
	}
	assert.Contains(t, body, `<div id="lightbox"></div>`)
	assert.NotContains(t, body, "Expanded view")
	assert.Contains(t, body, "application/ld+json")
	assert.Equal(t, "private, no-cache", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, b.csrf())
	assert.NotContains(t, b.cookies, "portfolio_session", "viewing the page must not start a session")
}

func TestProjectsKeepCatalogOrder(t *testing.T) {
	b := newBrowser(t, newTestApp(t))
	body := b.get("/").Body.String()

	last := -1
	for _, slug := range []string{"closed-captions", "plotly-dashboards", "capstone-group-4", "phase-4", "my-book-recommender-system"} {
		pos := strings.Index(body, `id="project-`+slug+`"`)
		require.GreaterOrEqual(t, pos, 0, "missing card %s", slug)
		assert.Greater(t, pos, last, "%s out of order", slug)
		last = pos
	}
}

func TestLightboxOpenAndCloseWithHTMX(t *testing.T) {
	b := newBrowser(t, newTestApp(t))
	b.get("/")

	open, _ := b.state()
	assert.False(t, open)

	rec := b.post("/lightbox/open/", url.Values{"image": {dashboard}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `src="/images/dashboard.png"`)
	assert.Contains(t, rec.Body.String(), "Expanded view")
	assert.Contains(t, rec.Body.String(), `action="/lightbox/close/"`)

	open, img := b.state()
	assert.True(t, open)
	assert.Equal(t, dashboard, img)

	// Full page render reflects the session's open lightbox.
	assert.Contains(t, b.get("/").Body.String(), "Expanded view")

	assert.Equal(t, 1, b.app.Sessions.Len())

	rec = b.post("/lightbox/close/", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<div id="lightbox"></div>`, strings.TrimSpace(rec.Body.String()))
	assert.Equal(t, 0, b.app.Sessions.Len(), "closing drops the session's controller")

	open, img = b.state()
	assert.False(t, open)
	assert.Empty(t, img)
}

func TestLightboxRetargetAndIdempotentClose(t *testing.T) {
	b := newBrowser(t, newTestApp(t))
	b.get("/")

	b.post("/lightbox/open/", url.Values{"image": {dashboard}}, true)
	b.post("/lightbox/open/", url.Values{"image": {"/images/recommender.png"}}, true)
	open, img := b.state()
	assert.True(t, open)
	assert.Equal(t, "/images/recommender.png", img)

	b.post("/lightbox/close/", nil, true)
	rec := b.post("/lightbox/close/", nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	open, _ = b.state()
	assert.False(t, open)
}

func TestLightboxWithoutJavaScript(t *testing.T) {
	b := newBrowser(t, newTestApp(t))
	b.get("/")

	rec := b.post("/lightbox/open/", url.Values{"image": {dashboard}}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#projects", rec.Header().Get("Location"))

	open, img := b.state()
	assert.True(t, open)
	assert.Equal(t, dashboard, img)

	rec = b.post("/lightbox/close/", nil, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	open, _ = b.state()
	assert.False(t, open)
}

func TestLightboxSessionsAreIsolated(t *testing.T) {
	app := newTestApp(t)
	alice := newBrowser(t, app)
	bob := newBrowser(t, app)
	alice.get("/")
	bob.get("/")

	alice.post("/lightbox/open/", url.Values{"image": {dashboard}}, true)

	open, _ := bob.state()
	assert.False(t, open)
	open, _ = alice.state()
	assert.True(t, open)
}

func TestLightboxRequiresCSRF(t *testing.T) {
	b := newBrowser(t, newTestApp(t))
	b.get("/")

	req := httptest.NewRequest(http.MethodPost, "/lightbox/open/", strings.NewReader("image=%2Fimages%2Fdashboard.png"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := b.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	open, _ := b.state()
	assert.False(t, open)
}

func TestLightboxRateLimit(t *testing.T) {
	app := portfolio.New(portfolio.SiteConfig{
		SessionSecret:     "test-secret",
		LightboxRateLimit: 2,
	}, views.Default(), portfolio.WithStaticDir(t.TempDir()))
	require.NoError(t, app.Setup())
	defer app.Close()

	b := newBrowser(t, app)
	b.get("/")
	form := url.Values{"image": {dashboard}}
	assert.Equal(t, http.StatusOK, b.post("/lightbox/open/", form, true).Code)
	assert.Equal(t, http.StatusOK, b.post("/lightbox/close/", nil, true).Code)

	rec := b.post("/lightbox/open/", form, true)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too many requests. Try again later.", rec.Body.String())

	// Reads are not limited.
	for i := 0; i < 5; i++ {
		open, _ := b.state()
		assert.False(t, open)
	}
	assert.Equal(t, http.StatusOK, b.get("/").Code)
}

func TestThumbnailRoute(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 800, 400))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "dashboard.png"), buf.Bytes(), 0o644))

	b := newBrowser(t, newTestApp(t, portfolio.WithStaticDir(dir)))

	rec := b.get("/thumbs/?src=" + url.QueryEscape(dashboard))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	cfg, _, err := image.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)

	rec = b.get("/images/dashboard.png")
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, src := range []string{"/etc/passwd", "/images/recommender.png", ""} {
		rec = b.get("/thumbs/?src=" + url.QueryEscape(src))
		assert.Equal(t, http.StatusNotFound, rec.Code, "src=%q", src)
	}
}

func TestNotFoundPage(t *testing.T) {
	b := newBrowser(t, newTestApp(t))
	rec := b.get("/nope/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestTrailingSlashRedirect(t *testing.T) {
	b := newBrowser(t, newTestApp(t))
	rec := b.get("/healthz")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/healthz/", rec.Header().Get("Location"))
}

func TestHealthz(t *testing.T) {
	b := newBrowser(t, newTestApp(t))
	rec := b.get("/healthz/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestRobotsAndSitemap(t *testing.T) {
	b := newBrowser(t, newTestApp(t))

	rec := b.get("/robots.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /lightbox/")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://example.com/sitemap.xml")

	rec = b.get("/sitemap.xml")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://example.com</loc>")
	assert.Contains(t, body, `xmlns:image="http://www.google.com/schemas/sitemap-image/1.1"`)
	assert.Contains(t, body, "<image:loc>https://example.com/images/dashboard.png</image:loc>")
	assert.Contains(t, body, "<image:loc>https://example.com/images/recommender.png</image:loc>")
	assert.Equal(t, 2, strings.Count(body, "<image:image>"))
}

func TestSecurityHeaders(t *testing.T) {
	b := newBrowser(t, newTestApp(t))
	rec := b.get("/")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "https://unpkg.com")
}

func TestSetupRequiresSessionSecret(t *testing.T) {
	app := portfolio.New(portfolio.SiteConfig{}, views.Default())
	err := app.Setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session_secret")
}

func TestSetupRejectsInvalidContent(t *testing.T) {
	app := portfolio.New(portfolio.SiteConfig{SessionSecret: "s"}, views.Default(),
		portfolio.WithContent(portfolio.Content{
			Profile:  portfolio.Profile{Name: "Someone"},
			Projects: []portfolio.Project{{Title: "No link"}},
		}))
	err := app.Setup()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link is required")
}

func TestCustomRoutes(t *testing.T) {
	b := newBrowser(t, newTestApp(t, portfolio.WithCustomRoutes(func(a *portfolio.App) {
		a.Echo.GET("/hello/", func(c echo.Context) error {
			return c.String(http.StatusOK, "hi "+a.Profile.Name)
		})
	})))
	rec := b.get("/hello/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hi Isaac Munyaka", rec.Body.String())
}
