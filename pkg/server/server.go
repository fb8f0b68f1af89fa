// Package server exposes the open-model session over HTTP: hierarchy,
// entity details, takeoff tables and scene descriptions, rendered through
// the same cached pipeline the CLI uses.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ifcwalk/ifcwalk/pkg/pipeline"
	"github.com/ifcwalk/ifcwalk/pkg/session"
)

// Server wires the session and the pipeline runner into an HTTP API.
type Server struct {
	session *session.Session
	runner  *pipeline.Runner
	logger  *log.Logger
}

// New creates a server. A nil session starts empty; a nil runner gets a
// cache-less default.
func New(sess *session.Session, runner *pipeline.Runner, logger *log.Logger) *Server {
	if sess == nil {
		sess = session.New()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{session: sess, runner: runner, logger: logger}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(recoverer(s.logger))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/models", func(r chi.Router) {
		r.Get("/", s.handleListModels)
		r.Post("/", s.handleOpenModel)

		r.Route("/{model}", func(r chi.Router) {
			r.Get("/", s.handleGetModel)
			r.Delete("/", s.handleCloseModel)
			r.Get("/hierarchy", s.handleHierarchy)
			r.Get("/hierarchy.svg", s.handleHierarchySVG)
			r.Get("/entities/{id}", s.handleEntity)
			r.Get("/takeoff", s.handleTakeoff)
			r.Get("/scene", s.handleScene)
		})
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
