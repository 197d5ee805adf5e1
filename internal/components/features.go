package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

func ModulesSection(tr *widget.VisibilityTracker, m content.ModulesSection, checkoutURL string) g.Node {
	return RevealSection(tr,
		RevealOptions{Class: "py-16 sm:py-24 bg-[#FAFAF7]", Inner: "max-w-6xl mx-auto"},
		Div(
			Class("text-center mb-12"),
			Div(Class("mb-4"), Pill("bg-[#7BA7BC]/15 text-[#5A8A9E]", g.Text(m.Badge))),
			H2(Class(headingClass+" mb-4"), g.Text(m.Title)),
			P(Class("text-[#6B7B8A] max-w-2xl mx-auto"), g.Text(m.Subtitle)),
		),
		Div(
			Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-6 mb-12"),
			g.Group(g.Map(indexed(m.Items), func(it indexedItem) g.Node {
				return RevealItem(Pop, it.i, 150*time.Millisecond,
					"bg-white rounded-xl p-6 shadow-sm border border-[#F5F0E8] "+cardHover,
					Div(
						Class("w-12 h-12 bg-[#7BA7BC] text-white rounded-full flex items-center justify-center text-xl font-bold mb-4"),
						g.Text(fmt.Sprint(it.Index)),
					),
					H3(Class("font-bold text-[#3D4A54] mb-2 text-sm sm:text-base"), g.Text(it.Title)),
					P(Class("text-[#6B7B8A] text-sm leading-relaxed"), g.Text(it.Body)),
				)
			})),
		),
		Div(Class("text-center"), CheckoutButton(checkoutURL, m.CTA, btnSage)),
	)
}
