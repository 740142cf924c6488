package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/campusdesk/registry-api/internal/api"
	"github.com/campusdesk/registry-api/internal/config"
	"github.com/campusdesk/registry-api/internal/middleware"
	"github.com/campusdesk/registry-api/internal/store"
)

type Server struct {
	cfg *config.Config
	db  *store.Store
}

func NewServer(cfg *config.Config, st *store.Store) *Server {
	return &Server{cfg: cfg, db: st}
}

// Handler assembles the middleware pipeline and routing table:
// access log -> recoverer -> CORS -> /api routes, /health, static files.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.AccessLog(logrus.StandardLogger()))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	a := api.NewAPI(s.db)
	r.Mount("/api", a.Routes())
	r.Get("/health", api.HealthHandler())

	// anything else falls through to the public directory
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.PublicDir)))

	return r
}

func (s *Server) NewHTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.BindAddr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}
