package page

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

func landing(t *testing.T) *content.Landing {
	t.Helper()
	l, err := content.Default()
	require.NoError(t, err)
	return l
}

func render(t *testing.T, p *Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))
	return buf.String()
}

func TestStateFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  State
	}{
		{"empty", "", State{OpenFAQ: -1}},
		{"faq", "faq=2", State{OpenFAQ: 2}},
		{"testimonial", "depoimento=1", State{OpenFAQ: -1, SelectedTestimonial: 1}},
		{"both", "faq=0&depoimento=2", State{OpenFAQ: 0, SelectedTestimonial: 2}},
		{"negative", "faq=-3&depoimento=-1", State{OpenFAQ: -1}},
		{"garbage", "faq=abc&depoimento=1.5", State{OpenFAQ: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, StateFromQuery(q))
		})
	}
}

func TestState_URLs(t *testing.T) {
	st := State{OpenFAQ: 1, SelectedTestimonial: 2}
	assert.Equal(t, "/?depoimento=2&faq=1#faq", st.URL("faq"))
	assert.Equal(t, "/#faq", Initial().URL("faq"))

	list := widget.NewDisclosureList(3)
	list.Activate(1)
	pageURL, fragURL := st.FAQ(list.After(1))
	assert.Equal(t, "/?depoimento=2#faq", pageURL)
	assert.Equal(t, "/fragments/faq?depoimento=2", fragURL)

	pageURL, fragURL = st.Testimonial(0)
	assert.Equal(t, "/?faq=1#depoimentos", pageURL)
	assert.Equal(t, "/fragments/depoimentos?faq=1", fragURL)
}

func TestNew_ClampsStateToContent(t *testing.T) {
	l := landing(t)

	p, err := New(l, widget.Unavailable{}, State{OpenFAQ: 99, SelectedTestimonial: 99})
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, Initial(), p.State())
	_, open := p.FAQ().Open()
	assert.False(t, open)
	assert.Equal(t, 0, p.Testimonials().Active())

	p2, err := New(l, widget.Unavailable{}, State{OpenFAQ: 3, SelectedTestimonial: 2})
	require.NoError(t, err)
	defer p2.Close()
	assert.True(t, p2.FAQ().Expanded(3))
	assert.Equal(t, l.Testimonials.Items[2], p2.Testimonials().Current())
}

func TestNew_NoTestimonials(t *testing.T) {
	l := landing(t)
	l.Testimonials.Items = nil

	_, err := New(l, widget.Unavailable{}, Initial())
	assert.ErrorIs(t, err, widget.ErrEmptySelector)
}

func TestRender_Deterministic(t *testing.T) {
	l := landing(t)
	st := State{OpenFAQ: 2, SelectedTestimonial: 1}

	a, err := New(l, widget.Unavailable{}, st)
	require.NoError(t, err)
	b, err := New(l, widget.Unavailable{}, st)
	require.NoError(t, err)

	assert.Equal(t, render(t, a), render(t, b))
}

var checkoutHref = regexp.MustCompile(`<a href="([^"]*)" data-checkout`)

func TestRender_EveryCheckoutUsesURL(t *testing.T) {
	l, err := landing(t).WithCheckoutURL("https://checkout.example.com/abc")
	require.NoError(t, err)

	p, err := New(l, widget.Unavailable{}, Initial())
	require.NoError(t, err)
	html := render(t, p)

	matches := checkoutHref.FindAllStringSubmatch(html, -1)
	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.Equal(t, "https://checkout.example.com/abc", m[1])
	}
	assert.NotContains(t, html, "pay.kiwify.com.br")
}

func TestRender_Sections(t *testing.T) {
	p, err := New(landing(t), widget.Unavailable{}, Initial())
	require.NoError(t, err)
	html := render(t, p)

	last := -1
	for _, r := range regions {
		i := strings.Index(html, `id="`+r.id+`"`)
		require.GreaterOrEqual(t, i, 0, r.id)
		assert.Greater(t, i, last, "%s out of order", r.id)
		last = i
	}
}

func TestRender_UnavailableObserverShowsContent(t *testing.T) {
	p, err := New(landing(t), widget.Unavailable{}, Initial())
	require.NoError(t, err)
	html := render(t, p)

	assert.NotContains(t, html, `data-reveal="entry"`)
	assert.Equal(t, len(regions), strings.Count(html, `data-reveal="done"`))
}

func TestRender_ManualObserver(t *testing.T) {
	obs := widget.NewManualObserver()
	p, err := New(landing(t), obs, Initial())
	require.NoError(t, err)

	assert.Equal(t, len(regions), obs.Subscriptions(""))
	assert.Equal(t, len(regions), strings.Count(render(t, p), `data-reveal="entry"`))

	obs.Report(RegionHero, 0.5)
	obs.Report(RegionModules, 0.1) // below 0.15
	assert.True(t, p.Tracker(RegionHero).Visible())
	assert.False(t, p.Tracker(RegionModules).Visible())

	html := render(t, p)
	assert.Contains(t, html, `id="hero" class="`)
	assert.Equal(t, 1, strings.Count(html, `data-reveal="done"`))
	assert.Equal(t, len(regions)-1, obs.Subscriptions(""))

	p.Close()
	assert.Equal(t, 0, obs.Subscriptions(""))
	assert.False(t, p.Tracker(RegionFAQ).Visible())
}

func TestFragments(t *testing.T) {
	p, err := New(landing(t), widget.Unavailable{}, State{OpenFAQ: 1, SelectedTestimonial: 2})
	require.NoError(t, err)

	var faq bytes.Buffer
	require.NoError(t, p.FAQNode().Render(&faq))
	assert.True(t, strings.HasPrefix(faq.String(), `<div id="faq-list"`))
	assert.Equal(t, 1, strings.Count(faq.String(), `data-state="expanded"`))
	assert.Contains(t, faq.String(), `id="faq-item-1" class="faq-item border border-[#F5F0E8] rounded-xl overflow-hidden faq-open" data-state="expanded"`)

	var carousel bytes.Buffer
	require.NoError(t, p.TestimonialNode().Render(&carousel))
	assert.True(t, strings.HasPrefix(carousel.String(), `<div id="depoimentos-carousel"`))
	assert.Contains(t, carousel.String(), `data-active="2"`)
	assert.Equal(t, 1, strings.Count(carousel.String(), `aria-current="true"`))
}

func TestTestimonialNode_RendersSelectedItem(t *testing.T) {
	l := landing(t)

	p, err := New(l, widget.Unavailable{}, State{OpenFAQ: -1, SelectedTestimonial: 2})
	require.NoError(t, err)
	defer p.Close()
	p.Testimonials().Select(1)

	var buf bytes.Buffer
	require.NoError(t, p.TestimonialNode().Render(&buf))
	out := buf.String()

	want := l.Testimonials.Items[1]
	assert.Contains(t, out, fmt.Sprintf(`src="%s"`, want.Photo))
	assert.Contains(t, out, stdhtml.EscapeString(want.Quote))
	assert.Contains(t, out, fmt.Sprintf(`alt="%s"`, stdhtml.EscapeString(want.Name)))
	assert.Contains(t, out, fmt.Sprintf(`data-stars="%d"`, want.Stars))
	assert.Contains(t, out, `data-active="1"`)

	for _, i := range []int{0, 2} {
		other := l.Testimonials.Items[i]
		assert.NotContains(t, out, stdhtml.EscapeString(other.Quote))
		assert.NotContains(t, out, fmt.Sprintf(`src="%s"`, other.Photo))
	}
}

func TestFAQNode_OpenClassFollowsState(t *testing.T) {
	p, err := New(landing(t), widget.Unavailable{}, State{OpenFAQ: 3})
	require.NoError(t, err)
	defer p.Close()

	var buf bytes.Buffer
	require.NoError(t, p.FAQNode().Render(&buf))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "faq-open"))
	assert.Contains(t, out, `id="faq-item-3" class="faq-item border border-[#F5F0E8] rounded-xl overflow-hidden faq-open"`)
	assert.Contains(t, out, `id="faq-item-0" class="faq-item border border-[#F5F0E8] rounded-xl overflow-hidden" data-state="collapsed"`)

	p.FAQ().Activate(3)
	buf.Reset()
	require.NoError(t, p.FAQNode().Render(&buf))
	assert.NotContains(t, buf.String(), "faq-open")
}

func TestPagesAreIndependent(t *testing.T) {
	l := landing(t)
	obs := widget.NewManualObserver()

	a, err := New(l, obs, Initial())
	require.NoError(t, err)
	b, err := New(l, obs, State{OpenFAQ: 0})
	require.NoError(t, err)

	a.FAQ().Activate(4)
	a.Testimonials().Select(1)

	assert.True(t, b.FAQ().Expanded(0))
	assert.False(t, b.FAQ().Expanded(4))
	assert.Equal(t, 0, b.Testimonials().Active())

	a.Close()
	assert.Equal(t, len(regions), obs.Subscriptions(""))
	b.Close()
}
