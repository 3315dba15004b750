// Package portfolio serves a single-page personal portfolio built with Go,
// Echo, and templ: a hero banner, about text, a skills grid, project cards
// with an image lightbox, and contact links.
//
// Content comes from an immutable Catalog loaded once at startup. Each browser
// session owns one lightbox.Controller; handlers dispatch open/close to it and
// the user-provided ViewFuncs render whatever state it holds.
package portfolio

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	glog "github.com/labstack/gommon/log"

	"github.com/isaac-munyaka/portfolio/lightbox"
)

// HomePage is everything the page template needs for one request.
type HomePage struct {
	Site      SiteConfig
	Meta      PageMeta
	Profile   Profile
	Projects  []Project
	Lightbox  lightbox.State
	CSRFToken string
}

// ViewFuncs holds the templ components the App calls when rendering.
type ViewFuncs struct {
	Home        func(page HomePage) templ.Component
	Lightbox    func(state lightbox.State, csrfToken string) templ.Component
	NotFound    func(cfg SiteConfig) templ.Component
	ServerError func(cfg SiteConfig) templ.Component
}

// App is the central portfolio application. It wires together the catalog,
// lightbox sessions, thumbnails, handlers, middleware, and templates.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Profile  Profile
	Catalog  *Catalog
	Sessions *LightboxSessions
	Thumbs   *ThumbnailCache
	Views    ViewFuncs

	content      Content
	customRoutes []func(*App)
	stopSweeper  func()
	ready        bool
}

// New creates a portfolio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	a := &App{
		Config:  cfg,
		Echo:    echo.New(),
		Views:   views,
		content: DefaultContent(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.Config.setDefaults()
	if a.Config.Name == "" {
		a.Config.Name = a.content.Profile.Name
	}
	if a.Config.Description == "" {
		a.Config.Description = a.content.Profile.Tagline
	}
	return a
}

// Setup validates the configuration and builds the catalog, sessions,
// middleware and routes. Start calls it; tests may call it and use ServeHTTP.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if err := a.content.Validate(); err != nil {
		return err
	}

	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(logLevel(a.Config.LogLevel))

	a.Profile = a.content.Profile
	a.Catalog = NewCatalog(a.content.Projects)
	a.Sessions = NewLightboxSessions(a.Config.SessionIdleTTL)
	a.stopSweeper = a.Sessions.StartSweeper(time.Minute)
	a.Thumbs = NewThumbnailCache(a.Catalog, a.Config.StaticDir, a.Config.ThumbnailWidth, a.Config.ThumbnailCacheTTL)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	return nil
}

// Start sets up the App and serves HTTP until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("serving %s (%d projects) on %s", a.Config.Name, a.Catalog.Len(), a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("portfolio: serve: %w", err)
	}
	return nil
}

// ServeHTTP lets the App be used as an http.Handler after Setup.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Echo.ServeHTTP(w, r)
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.Static("/images", filepath.Join(a.Config.StaticDir, "images"))
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/resume.pdf", a.handleResume)

	e.GET("/", a.handleHome)
	e.GET("/healthz/", handleHealth)
	e.GET("/thumbs/", a.handleThumbnail)

	e.GET("/lightbox/", a.handleLightboxState)
	limit := a.lightboxRateLimiter()
	e.POST("/lightbox/open/", a.handleLightboxOpen, limit)
	e.POST("/lightbox/close/", a.handleLightboxClose, limit)
}

// Close releases background resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stopSweeper != nil {
		a.stopSweeper()
	}
	return nil
}

func logLevel(s string) glog.Lvl {
	switch s {
	case "debug":
		return glog.DEBUG
	case "warn":
		return glog.WARN
	case "error":
		return glog.ERROR
	default:
		return glog.INFO
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
