package api

import (
	"net/http"
	"time"

	// Registers the swagger documents of both apps.
	_ "ollama-ui/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"ollama-ui/internal/config"
	"ollama-ui/internal/web"
)

// queueTimeout bounds how long a submission waits for a free slot.
const queueTimeout = 10 * time.Minute

// NewChatRouter builds the routes of the chat app.
func NewChatRouter(h *ChatHandler, cfg *config.Config) *chi.Mux {
	return newRouter(cfg, func(r chi.Router) {
		r.Get("/", h.Page)
		r.Get("/api/models", h.HandleListModels)
		r.With(throttle(cfg)).Post("/api/chat", h.HandleChat)
	})
}

// NewPoetryRouter builds the routes of the poetry app.
func NewPoetryRouter(h *PoetryHandler, cfg *config.Config) *chi.Mux {
	return newRouter(cfg, func(r chi.Router) {
		r.Get("/", h.Page)
		r.Get("/api/models", h.HandleListModels)
		r.With(throttle(cfg)).Post("/api/poem", h.HandlePoem)
	})
}

// newRouter wires the middleware and routes shared by both apps. When a root
// path is configured the app is served under it as well as at "/", so it works
// behind proxies that strip the prefix and ones that forward it.
func newRouter(cfg *config.Config, routes func(r chi.Router)) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	app := chi.NewRouter()
	app.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	})
	app.Get("/swagger/*", httpSwagger.Handler(httpSwagger.InstanceName(cfg.App)))
	app.Get("/static/*", serveStatic(web.Static()))
	routes(app)

	r.Mount("/", app)
	if cfg.RootPath != "" {
		r.Mount(cfg.RootPath, app)
	}
	return r
}

// throttle caps in-flight interactions at MaxConcurrency and queues up to
// MaxQueue more. Requests beyond that get 429.
func throttle(cfg *config.Config) func(http.Handler) http.Handler {
	return middleware.ThrottleBacklog(cfg.MaxConcurrency, cfg.MaxQueue, queueTimeout)
}

// serveStatic hands the wildcard part of the route to the file server, so
// assets resolve the same under any mount point.
func serveStatic(files http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r2 := r.Clone(r.Context())
		r2.URL.Path = "/" + chi.URLParam(r, "*")
		r2.URL.RawPath = ""
		files.ServeHTTP(w, r2)
	}
}
