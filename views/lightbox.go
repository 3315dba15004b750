package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/isaac-munyaka/portfolio/lightbox"
)

// lightboxID is the element htmx swaps when the lightbox opens or closes.
const lightboxID = "lightbox"

// Lightbox renders the overlay container. It is empty while the lightbox is
// closed; when open, the whole overlay is a close button.
func Lightbox(state lightbox.State, csrfToken string) g.Node {
	image, open := state.Image()
	if !open {
		return Div(ID(lightboxID))
	}
	return Div(
		ID(lightboxID),
		Form(
			Method("post"),
			Action("/lightbox/close/"),
			g.Attr("hx-post", "/lightbox/close/"),
			g.Attr("hx-target", "#"+lightboxID),
			g.Attr("hx-swap", "outerHTML"),
			Class("lightbox-overlay"),
			Input(Type("hidden"), Name("_csrf"), Value(csrfToken)),
			Button(
				Type("submit"),
				Class("lightbox-close"),
				g.Attr("aria-label", "Close enlarged image"),
				Img(
					Src(image),
					Alt("Expanded view"),
					Class("lightbox-image"),
				),
			),
		),
	)
}
