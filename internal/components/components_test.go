package components

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

func html(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestConvertIconName(t *testing.T) {
	tests := []struct {
		in        string
		wantName  string
		wantSizes string
	}{
		{"lucide--star size-5 text-sky", "lucide:star", "size-5 text-sky"},
		{"lucide--lock", "lucide:lock", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.wantName, convertIconName(tt.in))
			assert.Equal(t, tt.wantSizes, extractSizeClasses(tt.in))
		})
	}
}

func TestIcon(t *testing.T) {
	assert.Equal(t,
		`<span class="iconify inline-block size-4" data-icon="lucide:heart" aria-hidden="true"></span>`,
		html(t, Icon("lucide--heart size-4", "")))
	assert.Contains(t, html(t, Icon("lucide--heart", "Coração")), `role="img" aria-label="Coração"`)
}

func TestStagger(t *testing.T) {
	assert.Nil(t, Stagger(0, 100*time.Millisecond))
	assert.Nil(t, Stagger(3, 0))
	assert.Equal(t, `<div style="transition-delay: 300ms"></div>`, html(t, g.El("div", Stagger(3, 100*time.Millisecond))))
	assert.Equal(t, `<div style="transition-delay: 750ms"></div>`, html(t, g.El("div", Stagger(5, 150*time.Millisecond))))
}

func TestRevealSection(t *testing.T) {
	obs := widget.NewManualObserver()
	tr := widget.NewVisibilityTracker(obs, "dores", 1.7)
	defer tr.Close()

	entry := html(t, RevealSection(tr, RevealOptions{Variant: Slide}, g.Text("x")))
	assert.Contains(t, entry, `<section id="dores"`)
	assert.Contains(t, entry, `data-reveal="entry"`)
	assert.Contains(t, entry, `data-reveal-threshold="1"`)
	assert.Contains(t, entry, `class="reveal reveal-slide"`)

	obs.Report("dores", 1)
	assert.Contains(t, html(t, RevealSection(tr, RevealOptions{}, g.Text("x"))), `data-reveal="done"`)
}

func TestRevealSection_DefaultsToRise(t *testing.T) {
	tr := widget.NewVisibilityTracker(widget.Unavailable{}, "hero", 0.1)

	out := html(t, RevealSection(tr, RevealOptions{Inner: "max-w-3xl"}))
	assert.Contains(t, out, `class="reveal reveal-rise max-w-3xl"`)
	assert.Contains(t, out, `data-reveal="done"`)
}

func TestCheckoutButton(t *testing.T) {
	assert.Equal(t,
		`<a href="https://pay.example.com/x" data-checkout="" rel="noopener" class="btn">Quero</a>`,
		html(t, CheckoutButton("https://pay.example.com/x", "Quero", "btn")))
}

type stubLinks struct{}

func (stubLinks) FAQ(next *widget.DisclosureList) (string, string) {
	i, _ := next.Open()
	return fmt.Sprintf("/?faq=%d", i), fmt.Sprintf("/fragments/faq?faq=%d", i)
}

func (stubLinks) Testimonial(i int) (string, string) {
	return fmt.Sprintf("/?depoimento=%d", i), fmt.Sprintf("/fragments/depoimentos?depoimento=%d", i)
}

func TestFAQList_OpenClassTracksExpandedPanel(t *testing.T) {
	items := []content.Item{{Title: "a", Body: "A"}, {Title: "b", Body: "B"}}
	list := widget.NewDisclosureList(len(items))

	closed := html(t, FAQList(items, list, stubLinks{}))
	assert.NotContains(t, closed, FAQOpenClass)
	assert.Contains(t, closed, `id="faq-panel-1"`, "collapsed bodies stay in the markup")

	list.Activate(1)
	open := html(t, FAQList(items, list, stubLinks{}))
	assert.Contains(t, open, `id="faq-item-1" class="faq-item border border-[#F5F0E8] rounded-xl overflow-hidden faq-open" data-state="expanded"`)
	assert.Contains(t, open, `id="faq-item-0" class="faq-item border border-[#F5F0E8] rounded-xl overflow-hidden" data-state="collapsed"`)
}

func TestTestimonialCarousel_DotsDelaySwapForFade(t *testing.T) {
	sel, err := widget.NewRotatingSelector([]content.Testimonial{
		{Name: "Maria", Photo: "/m.jpg", Quote: "um", Stars: 5},
		{Name: "Ana", Photo: "/a.jpg", Quote: "dois", Stars: 4},
	})
	require.NoError(t, err)
	require.True(t, sel.Select(1))

	out := html(t, TestimonialCarousel(sel, stubLinks{}))
	assert.Equal(t, 2, strings.Count(out, `hx-swap="outerHTML swap:200ms"`))
	assert.Contains(t, out, `src="/a.jpg"`)
	assert.Contains(t, out, "dois")
	assert.Contains(t, out, `data-stars="4"`)
	assert.NotContains(t, out, "/m.jpg")
}

func TestStars(t *testing.T) {
	out := html(t, Stars(4))
	assert.Contains(t, out, `aria-label="4 de 5 estrelas"`)
	assert.Contains(t, out, `data-stars="4"`)
}
