package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(copyright string) g.Node {
	return Div(
		Class("mt-16 pt-8 border-t border-[#F5F0E8] text-center"),
		P(Class("text-[#6B7B8A] text-sm"), g.Text(copyright)),
	)
}
