package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

func GuaranteeSection(tr *widget.VisibilityTracker, gs content.GuaranteeSection, checkoutURL string) g.Node {
	return RevealSection(tr,
		RevealOptions{
			Class: "py-16 sm:py-24 bg-gradient-to-br from-[#7BA7BC] to-[#8BA888] text-white",
			Inner: "max-w-3xl mx-auto text-center",
		},
		Div(
			Class("w-20 h-20 bg-white rounded-full flex items-center justify-center mx-auto mb-6"),
			Icon("lucide--shield-check size-10 text-[#7BA7BC]", ""),
		),
		H2(Class("text-3xl sm:text-4xl md:text-5xl font-bold mb-2"), g.Text(gs.Title)),
		P(Class("text-xl sm:text-2xl font-semibold mb-6 opacity-90"), g.Text(gs.Subtitle)),
		P(Class("text-base sm:text-lg opacity-90 mb-8 max-w-xl mx-auto"), g.Text(gs.Body)),
		CheckoutButton(checkoutURL, gs.CTA, btnWhite),
	)
}
