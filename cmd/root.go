package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vidaemdestaque/entreconsultas/internal/config"
	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/logger"
)

var (
	envFile string

	log *slog.Logger
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "entreconsultas",
	Short: "Entre Consultas landing page",
	Long: `Serves the Entre Consultas landing page, or renders it once to a file.

Configuration comes from the environment, optionally seeded from a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logger.NewLogger()
		c, err := config.Load(log, envFile)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

// loadStore builds the content store from the compiled-in copy, or from path when set,
// and applies the checkout override.
func loadStore(path, checkoutURL string) (*content.Store, error) {
	l, err := content.Default()
	if err != nil {
		return nil, err
	}
	store := content.NewStore(l, log)

	if path != "" {
		if err := store.Reload(path); err != nil {
			return nil, err
		}
	}
	if checkoutURL != "" {
		if err := store.OverrideCheckoutURL(checkoutURL); err != nil {
			return nil, fmt.Errorf("CHECKOUT_URL: %w", err)
		}
	}
	return store, nil
}
