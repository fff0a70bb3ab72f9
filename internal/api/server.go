package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eplotdb/internal/catalog"
	"eplotdb/internal/deps"
	"eplotdb/internal/logging"
)

// Reader is the read side of the catalog served over HTTP.
type Reader interface {
	ListSeries(ctx context.Context) ([]catalog.Series, error)
	SeriesByID(ctx context.Context, id int64) (*catalog.Series, error)
	SeriesByName(ctx context.Context, name string) (*catalog.Series, error)
	ListEpisodes(ctx context.Context) ([]catalog.Episode, error)
	EpisodesForSeries(ctx context.Context, seriesID int64) ([]catalog.Episode, error)
	CheckHealth(ctx context.Context) (catalog.DatabaseHealth, error)
}

// Server serves the read-only catalog view.
type Server struct {
	addr   string
	reader Reader
	deps   []deps.Requirement
	logger *slog.Logger
	router *chi.Mux
}

// NewServer builds a server bound to addr. requirements are reported by the
// status endpoint.
func NewServer(addr string, reader Reader, requirements []deps.Requirement, logger *slog.Logger) *Server {
	s := &Server{
		addr:   addr,
		reader: reader,
		deps:   requirements,
		logger: logging.NewComponentLogger(logger, "api"),
	}
	s.router = s.routes()
	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/series", s.handleListSeries)
		r.Get("/series/{id}", s.handleGetSeries)
		r.Get("/series/{id}/episodes", s.handleSeriesEpisodes)
		r.Get("/episodes", s.handleListEpisodes)
		r.Get("/status", s.handleStatus)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", ww.Status()),
			logging.Int("bytes", ww.BytesWritten()),
			logging.String("request_id", middleware.GetReqID(r.Context())),
			logging.Duration("duration", time.Since(start)),
		)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()
	s.logger.Info("api listening", logging.String("addr", listener.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown api: %w", err)
		}
		s.logger.Info("api stopped")
		return nil
	}
}
