package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

func AudienceSection(tr *widget.VisibilityTracker, a content.AudienceSection, checkoutURL string) g.Node {
	return RevealSection(tr,
		RevealOptions{Class: "py-16 sm:py-24 bg-white", Inner: "max-w-6xl mx-auto"},
		H2(Class(headingClass+" text-center mb-12"), g.Text(a.Title)),
		Div(
			Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-6 max-w-5xl mx-auto mb-12 justify-center"),
			g.Group(g.Map(indexed(a.Items), func(it indexedItem) g.Node {
				return RevealItem(Pop, it.i, 100*time.Millisecond,
					"bg-[#F5F0E8] rounded-xl p-6 text-center "+cardHover,
					Div(Class("mx-auto mb-4 w-14"), IconCircle(it.Icon+" size-7", "w-14 h-14")),
					H3(Class("font-bold text-[#3D4A54] mb-2 text-sm uppercase"), g.Text(it.Title)),
					P(Class("text-[#6B7B8A] text-sm"), g.Text(it.Body)),
				)
			})),
		),
		Div(Class("text-center"), CheckoutButton(checkoutURL, a.CTA, btnPrimary)),
	)
}
