// Package views is the presentation layer of the portfolio. Pages are built
// as gomponents node trees and handed to the App as templ components.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/isaac-munyaka/portfolio"
	"github.com/isaac-munyaka/portfolio/lightbox"
	"github.com/isaac-munyaka/portfolio/markdown"
)

// Default returns the built-in templates.
func Default() portfolio.ViewFuncs {
	return portfolio.ViewFuncs{
		Home: func(page portfolio.HomePage) templ.Component {
			return component(HomePage(page))
		},
		Lightbox: func(state lightbox.State, csrfToken string) templ.Component {
			return component(Lightbox(state, csrfToken))
		},
		NotFound: func(cfg portfolio.SiteConfig) templ.Component {
			return component(NotFoundPage(cfg))
		},
		ServerError: func(cfg portfolio.SiteConfig) templ.Component {
			return component(ServerErrorPage(cfg))
		},
	}
}

// component adapts a gomponents node to templ.Component.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// markdownNode renders Markdown source, falling back to escaped text.
func markdownNode(src string) g.Node {
	html, err := markdown.ToHTML(src)
	if err != nil {
		return g.Text(src)
	}
	return g.Raw(html)
}
