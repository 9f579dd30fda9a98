package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meur/cs2inspect/internal/api"
	"github.com/meur/cs2inspect/internal/config"
	"github.com/meur/cs2inspect/internal/logging"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logging.Setup(cfg.LogLevel, cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := newHTTPServer(cfg.Addr(), api.New(log.Logger, cfg.LogInputLimit))

	log.Info().
		Str("addr", cfg.Addr()).
		Str("environment", cfg.Environment).
		Strs("endpoints", []string{
			"GET /?url=!g <code>",
			"GET /?url=steam://...",
			"GET /health",
		}).
		Msg("CS2 inspect backend starting")

	if err := run(ctx, server); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}

	log.Info().Msg("server stopped")
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// run serves until ctx is done, then drains in-flight requests
func run(ctx context.Context, server *http.Server) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	group.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
