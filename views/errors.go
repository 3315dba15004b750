package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/isaac-munyaka/portfolio"
)

// NotFoundPage renders the 404 page.
func NotFoundPage(cfg portfolio.SiteConfig) g.Node {
	return errorPage(cfg, "Page not found", "The page you are looking for does not exist.")
}

// ServerErrorPage renders the 500 page.
func ServerErrorPage(cfg portfolio.SiteConfig) g.Node {
	return errorPage(cfg, "Something went wrong", "Please try again in a moment.")
}

func errorPage(cfg portfolio.SiteConfig, title, message string) g.Node {
	return document(
		portfolio.PageMeta{Title: title + " · " + cfg.Name},
		nil,
		Section(
			Class("hero"),
			H1(Class("hero-title"), g.Text(title)),
			P(Class("hero-tagline"), g.Text(message)),
			A(Href("/"), Class("button"), g.Text("Back to "+cfg.Name)),
		),
	)
}
