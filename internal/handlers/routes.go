package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	_ "github.com/strategium/pairings/docs"
)

// RequestTimeout bounds a single request, searches included.
const RequestTimeout = 60 * time.Second

// Routes builds the HTTP router.
func (h *Handler) Routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/doc.json", h.SwaggerDoc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tournaments", func(r chi.Router) {
			r.Post("/", h.CreateTournament)
			r.Get("/", h.GetTournaments)
			r.Get("/{id}", h.GetTournament)
			r.Get("/{id}/sessions", h.GetTournamentSessions)
		})
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Get("/{code}", h.GetSession)
			r.Post("/{code}/matrix", h.SubmitMatrix)
			r.Get("/{code}/matrices", h.GetMatrices)
			r.Post("/{code}/optimize", h.Optimize)
			r.Post("/{code}/recommend", h.Recommend)
		})
	})

	return r
}

// SwaggerDoc serves the generated OpenAPI document.
func (h *Handler) SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.logger.Errorw("Failed to read swagger doc", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Documentation unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
