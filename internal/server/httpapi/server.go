package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/birdlog/internal/logging"
	"github.com/dmitrijs2005/birdlog/internal/server/apierror"
	"github.com/dmitrijs2005/birdlog/internal/server/config"
	"github.com/dmitrijs2005/birdlog/internal/server/services"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server wraps http.Server with the birdlog router and graceful shutdown.
type Server struct {
	config *config.Config
	logger logging.Logger
	srv    *http.Server
}

func NewServer(cfg *config.Config, logger logging.Logger, service *services.SightingService) *Server {
	handler := NewHTTP(service, logger)

	s := &Server{config: cfg, logger: logger}
	s.srv = &http.Server{
		Addr:         cfg.EndpointAddrHTTP,
		Handler:      s.routes(handler),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) routes(h *HTTP) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.renderError(w, r, apierror.New(
			http.StatusNotFound,
			"resource_not_found",
			"Not found",
			"The requested resource does not exist.",
		))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", h.Ping)

		r.Route("/sightings", func(r chi.Router) {
			r.Get("/", h.ReadAll)
			r.Post("/", h.Create)
			r.Get("/{sightingID}", h.Read)
			r.Put("/{sightingID}", h.Update)
			r.Delete("/{sightingID}", h.Delete)
		})
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info(ctx, "shutting down http server")
	return s.srv.Shutdown(shutdownCtx)
}
