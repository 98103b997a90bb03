package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"chargemap/internal/platform/config"
	"chargemap/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the stdlib server listening for it
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer reads PORT (default 8080) from cfg and applies opts to the mux
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayPort("PORT", "8080")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 120*time.Second),
		},
	}
}

// Router exposes the mux as a Router
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the listen address, e.g. ":8080"
func (s *Server) Addr() string { return s.addr }

// Handler is the root handler, for httptest
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Run listens until ctx is done, then shuts down with a grace period
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("http listening")
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info().Msg("http shutting down")
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in flight requests
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
