package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	alttex "github.com/NicholaCharlton/AltTeX-Personal"
	"github.com/NicholaCharlton/AltTeX-Personal/internal/config"
)

// Server is the HTTP API serving alt text.
type Server struct {
	router   chi.Router
	renderer *alttex.Renderer
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(renderer *alttex.Renderer, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		renderer: renderer,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(LimitBody(s.cfg.MaxBodyBytes))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/equation", s.handleEquation)
		r.Post("/table", s.handleTable)
		r.Post("/document", s.handleDocument)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
