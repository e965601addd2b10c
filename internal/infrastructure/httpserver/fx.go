package httpserver

import (
	"context"
	"errors"
	"net/http"

	"channelboard/config"
	"channelboard/internal/delivery/rest"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Module(
	"httpserver",
	fx.Provide(
		rest.NewHandlers,
		NewRouter,
	),
	fx.Invoke(registerHTTPServer),
)

func NewRouter(h *rest.Handlers) *chi.Mux {
	return rest.SetupRoutes(h)
}

func registerHTTPServer(
	lc fx.Lifecycle,
	cfg *config.ServiceConfig,
	router *chi.Mux,
	log zerolog.Logger,
) {
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("port", cfg.Port).Msg("HTTP server started")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("HTTP server failed")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server...")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			log.Info().Msg("HTTP server stopped")
			return nil
		},
	})
}
