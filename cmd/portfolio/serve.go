package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/isaac-munyaka/portfolio"
	"github.com/isaac-munyaka/portfolio/views"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio HTTP server",
	Long: `Start the portfolio HTTP server.

Send SIGHUP to drop cached thumbnails after replacing project images.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := portfolio.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		cfg.Addr = listenAddr(cfg.Addr, addr, portfolio.EnvOr("PORT", ""))

		content, err := portfolio.LoadContent(contentFile)
		if err != nil {
			return err
		}

		app := portfolio.New(cfg, views.Default(), portfolio.WithContent(content))
		if err := app.Setup(); err != nil {
			return err
		}
		defer app.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		go func() {
			for {
				select {
				case <-hup:
					app.Thumbs.Invalidate()
					app.Echo.Logger.Info("thumbnail cache cleared")
				case <-ctx.Done():
					return
				}
			}
		}()

		errc := make(chan error, 1)
		go func() { errc <- app.Start() }()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-errc
	},
}

// listenAddr picks the listen address: the --addr flag wins, then $PORT,
// then the configured address.
func listenAddr(configured, flag, port string) string {
	switch {
	case flag != "":
		return flag
	case port != "":
		return ":" + port
	default:
		return configured
	}
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config and $PORT)")
	rootCmd.AddCommand(serveCmd)
}
