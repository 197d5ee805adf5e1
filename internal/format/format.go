// Package format turns content values into display text: pt-BR prices and the small
// markdown subset used for highlighted copy.
package format

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencySymbol = "R$"

var (
	printer  = message.NewPrinter(language.BrazilianPortuguese)
	markdown = goldmark.New()
	policy   = bluemonday.UGCPolicy()
)

// Money formats an amount in centavos. Whole amounts drop the cents ("R$ 37"), others
// keep two decimals ("R$ 13,20").
func Money(cents int64) string {
	if cents%100 == 0 {
		return currencySymbol + " " + printer.Sprintf("%v", number.Decimal(cents/100))
	}
	return currencySymbol + " " + printer.Sprintf("%v", number.Decimal(float64(cents)/100, number.Scale(2)))
}

// Block renders markdown to sanitized HTML.
func Block(md string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}

// Inline renders a single paragraph of markdown without the surrounding <p>.
func Inline(md string) template.HTML {
	out := strings.TrimSpace(string(Block(md)))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out)
}
