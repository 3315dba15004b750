package portfolio

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	sessionName  = "portfolio_session"
	sessionIDKey = "sid"
)

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return isBinaryPath(c.Request().URL.Path)
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' https://unpkg.com; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; connect-src 'self'",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
	}))

	e.Use(session.Middleware(a.newSessionStore()))

	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		ContextKey:  middleware.DefaultCSRFConfig.ContextKey,
		TokenLookup: "header:X-CSRF-Token,form:_csrf",
		CookieName:  "_csrf",
		CookiePath:  "/",
		CookieSameSite: func() http.SameSite {
			return http.SameSiteLaxMode
		}(),
		CookieSecure: a.Config.CookieSecure,
		ErrorHandler: func(err error, c echo.Context) error {
			return c.String(http.StatusForbidden, "Forbidden")
		},
	}))

	e.Use(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/public") ||
				strings.HasPrefix(path, "/images") ||
				path == "/sitemap.xml" || path == "/robots.txt" ||
				path == "/favicon.svg" || path == "/resume.pdf"
		},
	}))

	e.Use(cacheControlMiddleware)
}

// lightboxRateLimiter allows LightboxRateLimit state-changing posts per
// client IP per minute, with the whole allowance available as a burst.
func (a *App) lightboxRateLimiter() echo.MiddlewareFunc {
	perMinute := a.Config.LightboxRateLimit
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(perMinute) / time.Minute.Seconds()),
			Burst:     perMinute,
			ExpiresIn: 5 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many requests. Try again later.")
		},
	})
}

func isBinaryPath(path string) bool {
	return strings.HasPrefix(path, "/images/") ||
		strings.HasPrefix(path, "/thumbs/") ||
		path == "/resume.pdf"
}

func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		switch {
		case strings.HasPrefix(path, "/public/"):
			c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		case strings.HasPrefix(path, "/images/"), strings.HasPrefix(path, "/thumbs/"):
			c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		case path == "/sitemap.xml" || path == "/robots.txt" || path == "/resume.pdf":
			c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		case strings.HasPrefix(path, "/lightbox"), strings.HasPrefix(path, "/healthz"):
			c.Response().Header().Set("Cache-Control", "no-store")
		default:
			// The page embeds the session's lightbox state.
			c.Response().Header().Set("Cache-Control", "private, no-cache")
		}
		return next(c)
	}
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 12,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// sessionID returns the UI session id carried by the request, if any.
func sessionID(c echo.Context) (string, bool) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return "", false
	}
	id, ok := sess.Values[sessionIDKey].(string)
	return id, ok && id != ""
}

// ensureSessionID returns the request's UI session id, issuing a new one and
// saving the cookie if there is none.
func ensureSessionID(c echo.Context) (string, error) {
	if id, ok := sessionID(c); ok {
		return id, nil
	}
	// A cookie that fails to decode still yields a fresh session to overwrite it.
	sess, err := session.Get(sessionName, c)
	if sess == nil {
		return "", err
	}
	id := uuid.NewString()
	sess.Values[sessionIDKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", err
	}
	return id, nil
}

// CsrfToken extracts the CSRF token from the Echo context.
func CsrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
