package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	g "maragu.dev/gomponents"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/logger"
	"github.com/vidaemdestaque/entreconsultas/internal/middleware"
	"github.com/vidaemdestaque/entreconsultas/internal/page"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

// Views counted by landing_renders_total.
const (
	ViewPage         = "page"
	ViewFAQ          = "faq"
	ViewTestimonials = "depoimentos"
)

// Pages serves the landing page and its widget fragments. Every request builds its own
// page instance from the current copy.
type Pages struct {
	store    *content.Store
	observer widget.Observer
	log      *slog.Logger
	renders  *prometheus.CounterVec
}

func NewPages(store *content.Store, obs widget.Observer, log *slog.Logger, reg prometheus.Registerer) (*Pages, error) {
	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_renders_total",
		Help: "Rendered landing views by kind.",
	}, []string{"view"})
	if err := reg.Register(renders); err != nil {
		return nil, err
	}

	return &Pages{
		store:    store,
		observer: obs,
		log:      log.With(logger.Scope("pages")),
		renders:  renders,
	}, nil
}

// LandingPage renders the full page in the state carried by the query string.
func (h *Pages) LandingPage(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, ViewPage, (*page.Page).Node)
}

// FAQFragment answers htmx with the accordion in its next state. Plain requests land on
// the full page carrying the same state.
func (h *Pages) FAQFragment(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsHTMX(r.Context()) {
		http.Redirect(w, r, page.StateFromQuery(r.URL.Query()).URL(page.RegionFAQ), http.StatusSeeOther)
		return
	}
	h.serve(w, r, ViewFAQ, (*page.Page).FAQNode)
}

// TestimonialFragment answers htmx with the carousel on the selected testimonial.
func (h *Pages) TestimonialFragment(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsHTMX(r.Context()) {
		http.Redirect(w, r, page.StateFromQuery(r.URL.Query()).URL(page.RegionTestimonials), http.StatusSeeOther)
		return
	}
	h.serve(w, r, ViewTestimonials, (*page.Page).TestimonialNode)
}

func (h *Pages) serve(w http.ResponseWriter, r *http.Request, view string, node func(*page.Page) g.Node) {
	p, err := page.New(h.store.Current(), h.observer, page.StateFromQuery(r.URL.Query()))
	if err != nil {
		h.log.Error("failed to build page", logger.Error(err), slog.String("view", view))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer p.Close()

	var buf bytes.Buffer
	if err := node(p).Render(&buf); err != nil {
		h.log.Error("failed to render page", logger.Error(err), slog.String("view", view))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renders.WithLabelValues(view).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Health reports liveness as JSON.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
