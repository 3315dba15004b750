package portfolio

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/isaac-munyaka/portfolio/lightbox"
)

func (a *App) handleHome(c echo.Context) error {
	return Render(c, a.Views.Home(HomePage{
		Site: a.Config,
		Meta: PageMeta{
			Title:       a.Config.Name,
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL),
			OGType:      "profile",
		},
		Profile:   a.Profile,
		Projects:  a.Catalog.Projects(),
		Lightbox:  a.lightboxState(c),
		CSRFToken: CsrfToken(c),
	}))
}

// lightboxState returns the session's lightbox state without creating a session.
func (a *App) lightboxState(c echo.Context) lightbox.State {
	id, ok := sessionID(c)
	if !ok {
		return lightbox.Closed()
	}
	ctrl, ok := a.Sessions.Lookup(id)
	if !ok {
		return lightbox.Closed()
	}
	return ctrl.State()
}

func (a *App) sessionController(c echo.Context) (*lightbox.Controller, error) {
	id, err := ensureSessionID(c)
	if err != nil {
		return nil, fmt.Errorf("portfolio: session: %w", err)
	}
	return a.Sessions.Get(id), nil
}

func (a *App) handleLightboxOpen(c echo.Context) error {
	ctrl, err := a.sessionController(c)
	if err != nil {
		return err
	}
	ctrl.Open(c.FormValue("image"))
	return a.respondLightbox(c, ctrl.State())
}

// handleLightboxClose closes the session's lightbox and drops its controller;
// a session without a controller reads as CLOSED.
func (a *App) handleLightboxClose(c echo.Context) error {
	if id, ok := sessionID(c); ok {
		if ctrl, ok := a.Sessions.Lookup(id); ok {
			ctrl.Close()
		}
		a.Sessions.Forget(id)
	}
	return a.respondLightbox(c, lightbox.Closed())
}

// respondLightbox swaps the overlay fragment for htmx requests and falls back
// to a redirect for plain form posts.
func (a *App) respondLightbox(c echo.Context, state lightbox.State) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		return Render(c, a.Views.Lightbox(state, CsrfToken(c)))
	}
	return c.Redirect(http.StatusSeeOther, "/#projects")
}

type lightboxJSON struct {
	Open  bool   `json:"open"`
	Image string `json:"image"`
}

func (a *App) handleLightboxState(c echo.Context) error {
	image, open := a.lightboxState(c).Image()
	return c.JSON(http.StatusOK, lightboxJSON{Open: open, Image: image})
}

func (a *App) handleThumbnail(c echo.Context) error {
	data, err := a.Thumbs.Get(c.QueryParam("src"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

func (a *App) handleResume(c echo.Context) error {
	return c.Attachment(filepath.Join(a.Config.StaticDir, "resume.pdf"), "resume.pdf")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.Config.StaticDir, "favicon.svg"))
}

// handleRobots generates robots.txt from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /lightbox/\nDisallow: /thumbs/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
