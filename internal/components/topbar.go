package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
)

func StickyBar(bar content.StickyBar) g.Node {
	return Div(
		ID("sticky-bar"),
		Class("fixed top-0 left-0 right-0 z-50 bg-gradient-to-r from-[#A8C8D8] to-[#7BA7BC] text-white py-2 px-4 shadow-sm"),
		Div(
			Class("max-w-6xl mx-auto flex items-center justify-center gap-2 text-sm sm:text-base"),
			Icon("lucide--zap size-4 animate-pulse", ""),
			Span(Class("font-medium"), g.Text(bar.Label)),
			Span(g.Text(bar.Text)),
		),
	)
}
