package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/page"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

var (
	renderOut         string
	renderContent     string
	renderFAQ         int
	renderTestimonial int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the landing page once",
	Long: `Renders the full landing page to a file, or stdout, for previews and static hosting.
--faq and --depoimento pick the initial widget state.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("content") {
			renderContent = cfg.ContentFile
		}
		store, err := loadStore(renderContent, cfg.CheckoutURL)
		if err != nil {
			return err
		}

		var obs widget.Observer = widget.Unavailable{}
		if cfg.RevealAnimations {
			obs = &widget.ClientObserver{}
		}
		st := page.State{OpenFAQ: renderFAQ, SelectedTestimonial: renderTestimonial}

		if renderOut == "" || renderOut == "-" {
			return renderPage(cmd.OutOrStdout(), store.Current(), obs, st)
		}

		f, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := renderPage(f, store.Current(), obs, st); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
		log.Info("page rendered", slog.String("path", renderOut))
		return nil
	},
}

func renderPage(w io.Writer, l *content.Landing, obs widget.Observer, st page.State) error {
	p, err := page.New(l, obs, st)
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&renderContent, "content", "", "YAML copy file (default: CONTENT_FILE or the compiled-in copy)")
	renderCmd.Flags().IntVar(&renderFAQ, "faq", -1, "expanded FAQ panel, -1 for none")
	renderCmd.Flags().IntVar(&renderTestimonial, "depoimento", 0, "active testimonial")
	rootCmd.AddCommand(renderCmd)
}
