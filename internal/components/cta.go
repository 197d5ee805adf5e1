package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/format"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

var perkColors = map[string]string{
	"sky":   "text-[#A8C8D8]",
	"sage":  "text-[#8BA888]",
	"ocean": "text-[#7BA7BC]",
}

func OfferSection(tr *widget.VisibilityTracker, o content.OfferSection, checkoutURL string) g.Node {
	return RevealSection(tr,
		RevealOptions{
			Variant: Pop,
			Class:   "py-16 sm:py-24 relative bg-cover bg-center",
			Style:   fmt.Sprintf("background-image: linear-gradient(180deg, rgba(250,250,247,0.95), rgba(250,250,247,0.95)), url(%s)", o.Background),
			Inner:   "reveal-slow max-w-6xl mx-auto",
		},
		Div(
			Class("max-w-2xl mx-auto bg-white rounded-2xl p-6 sm:p-10 shadow-xl text-center"),
			P(Class("text-[#6B7B8A] mb-4"), g.Text(o.Kicker)),
			H2(Class("text-xl sm:text-2xl font-bold text-[#3D4A54] mb-2 uppercase"), g.Text(o.Title)),
			P(Class("text-[#6B7B8A] mb-8"), g.Text(o.Subtitle)),
			Div(
				Class("mb-8"),
				P(Class("text-sm text-[#6B7B8A] mb-2 font-medium"), g.Text(o.PriceLabel)),
				P(Class("text-5xl sm:text-6xl font-bold text-[#7BA7BC]"), g.Attr("data-price", ""), g.Text(format.Money(o.PriceCents))),
				g.If(o.Installments.Count > 1, P(Class("text-[#6B7B8A] mt-2"), g.Text(installmentText(o.Installments)))),
			),
			Div(
				Class("space-y-4 mb-8"),
				CheckoutButton(checkoutURL, o.CTA, btnBlock),
				g.If(o.AltCTA != "", CheckoutButton(checkoutURL, o.AltCTA, btnOutline)),
			),
			Div(
				Class("flex flex-wrap justify-center gap-4 text-sm text-[#6B7B8A] mb-6"),
				g.Group(g.Map(o.Perks, func(p content.Perk) g.Node {
					return Span(Class("flex items-center gap-1"), Icon(p.Icon+" size-4 "+perkColors[p.Color], ""), g.Text(p.Text))
				})),
			),
			Div(
				Class("flex justify-center gap-4 text-[#6B7B8A]"),
				g.Group(g.Map(o.Trust, func(p content.Perk) g.Node {
					return Div(Class("flex items-center gap-1 text-xs"), Icon(p.Icon+" size-4", ""), g.Text(p.Text))
				})),
			),
		),
	)
}

func installmentText(in content.Installments) string {
	return fmt.Sprintf("%s %dx %s %s", in.Prefix, in.Count, format.Money(in.AmountCents), in.Suffix)
}
