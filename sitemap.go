package portfolio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName    xml.Name     `xml:"urlset"`
	XMLNS      string       `xml:"xmlns,attr"`
	XMLNSImage string       `xml:"xmlns:image,attr"`
	URLs       []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string         `xml:"loc"`
	LastMod string         `xml:"lastmod,omitempty"`
	Images  []sitemapImage `xml:"image:image"`
}

type sitemapImage struct {
	Loc string `xml:"image:loc"`
}

// The portfolio is a single page, so the sitemap lists only the home URL,
// with the project images attached to it.
func (a *App) handleSitemap(c echo.Context) error {
	home := sitemapURL{Loc: BuildURL(a.Config.URL)}
	for _, src := range a.Catalog.Images() {
		home.Images = append(home.Images, sitemapImage{Loc: a.absoluteURL(src)})
	}
	sitemap := sitemapURLSet{
		XMLNS:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XMLNSImage: "http://www.google.com/schemas/sitemap-image/1.1",
		URLs:       []sitemapURL{home},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

// absoluteURL prefixes site-relative asset paths with the site URL.
func (a *App) absoluteURL(src string) string {
	if isLocalAsset(src) {
		return a.Config.URL + src
	}
	return src
}
