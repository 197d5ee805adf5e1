package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

func PainsSection(tr *widget.VisibilityTracker, pains content.PainsSection) g.Node {
	return RevealSection(tr,
		RevealOptions{Class: "py-16 sm:py-24 bg-[#F5F0E8]", Inner: "max-w-6xl mx-auto"},
		H2(Class("copy-accent "+headingClass+" text-center mb-12"), Markdown(pains.Title)),
		Div(
			Class("grid sm:grid-cols-2 gap-4 sm:gap-6 max-w-4xl mx-auto"),
			g.Group(g.Map(indexed(pains.Items), func(it indexedItem) g.Node {
				return RevealItem(Slide, it.i, 100*time.Millisecond,
					"bg-white rounded-xl p-5 flex items-start gap-4 shadow-sm "+cardHover,
					Icon("lucide--x-circle size-6 text-[#B8B8D1] flex-shrink-0 mt-0.5", ""),
					P(Class("text-[#3D4A54] text-sm sm:text-base"), g.Text(it.Body)),
				)
			})),
		),
	)
}

type indexedItem struct {
	content.Item
	i int
}

func indexed(items []content.Item) []indexedItem {
	out := make([]indexedItem, len(items))
	for i, it := range items {
		out[i] = indexedItem{Item: it, i: i}
	}
	return out
}
