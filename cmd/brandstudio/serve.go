package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jalvarado/brandstudio/internal/auth"
	"github.com/jalvarado/brandstudio/internal/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web console",
	Long: `Serve starts the local HTTP API the browser console talks to. State is
held in memory for the lifetime of the process; nothing is persisted.

Examples:
  brandstudio serve
  brandstudio serve --addr 127.0.0.1:9090`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (default from BRANDSTUDIO_LISTEN_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	sess, gw, cfg := bootstrap(ctx)

	addr := cfg.ListenAddr
	if addrFlag != "" {
		addr = addrFlag
	}

	// Media models sit behind the paid tier; re-check the credential right
	// before each image or video request so a free-tier key fails with a
	// recoverable message instead of an opaque provider error.
	preflight := func(ctx context.Context) error {
		return auth.RevalidateForMedia(ctx, gw.Client(), gw.TextModel())
	}

	srv := &http.Server{
		Addr:        addr,
		Handler:     server.New(sess, server.WithMediaPreflight(preflight)).Handler(),
		ReadTimeout: 30 * time.Second,
		// No write timeout: a video generation request holds its response
		// open while the job polls, which can take minutes.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("Starting console server")
	fmt.Printf("\n  BrandStudio console: http://%s\n\n", addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
