package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// noteIDParam is the path parameter holding the note id.
const noteIDParam = "noteID"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)
	router.Use(middleware.RealIP)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader, processTimeHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	// routes without authorization
	router.Get("/", h.root)
	router.Get("/health", h.health)
	router.Get("/version", h.version)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Route("/notes", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createNote)
		r.Get("/", h.listNotes)
		r.Get("/{"+noteIDParam+"}", h.getNote)
		r.Put("/{"+noteIDParam+"}", h.updateNote)
		r.Delete("/{"+noteIDParam+"}", h.deleteNote)
	})

	return router
}
