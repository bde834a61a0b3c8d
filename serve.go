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

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	zero "github.com/rs/zerolog/log"
	service "github.com/sidereusnuntius/profilechecker/internal/service/impl"
	"github.com/sidereusnuntius/profilechecker/internal/state"
	"github.com/sidereusnuntius/profilechecker/internal/web"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the profile checker page",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, c, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := state.State{
		Fetcher: c,
		Config:  cfg,
	}
	svc := service.New(&state)
	manager := scs.NewCookieManager(cfg.SessionKey)

	handler := web.New(&cfg, svc, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zero.Info().Uint16("port", cfg.Port).Msg("started server")
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return svc.Janitor(ctx, cfg.WidgetTTL/2)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		zero.Info().Msg("shutting down")
		return s.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
