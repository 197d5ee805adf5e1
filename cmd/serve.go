package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vidaemdestaque/entreconsultas/internal/logger"
	"github.com/vidaemdestaque/entreconsultas/internal/server"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

var (
	serveContent string
	serveWatch   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page",
	Long: `Serves the landing page, its htmx fragments, static assets, /health and /metrics.

With --content the copy is read from a YAML file instead of the compiled-in one, and
--watch reloads it whenever the file changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("content") {
			serveContent = cfg.ContentFile
		}
		if !cmd.Flags().Changed("watch") {
			serveWatch = cfg.ContentWatch
		}

		store, err := loadStore(serveContent, cfg.CheckoutURL)
		if err != nil {
			return err
		}

		var obs widget.Observer = widget.Unavailable{}
		if cfg.RevealAnimations {
			obs = &widget.ClientObserver{}
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

		router, err := server.NewRouter(server.Deps{
			Store:    store,
			Observer: obs,
			Logger:   log,
			Registry: reg,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveWatch && serveContent != "" {
			go func() {
				if err := store.Watch(ctx, serveContent); err != nil && ctx.Err() == nil {
					log.Error("content watch stopped", logger.Scope("serve"), logger.Error(err))
				}
			}()
			log.Info("watching content", slog.String("path", serveContent))
		}

		return server.Run(ctx, server.Options{
			Addr:              cfg.Port,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			ShutdownTimeout:   cfg.ShutdownTimeout,
		}, router, log)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveContent, "content", "", "YAML copy file (default: CONTENT_FILE or the compiled-in copy)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the content file when it changes (default: CONTENT_WATCH)")
	rootCmd.AddCommand(serveCmd)
}
