// Package web exposes the composition engine over a JSON API: catalog
// and definition lookup for screens, admin CRUD for the override flow,
// and a render endpoint producing view trees.
package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/artpar/offerview/adapters/metrics"
	"github.com/artpar/offerview/app"
	"github.com/artpar/offerview/core/render"
	"github.com/artpar/offerview/ports"
)

// Handler provides the JSON API endpoints.
type Handler struct {
	registry *app.RegistryService
	renderer *render.Renderer
	logger   zerolog.Logger
	metrics  *metrics.Collector

	hasher         ports.Hasher
	adminTokenHash []byte
}

// Deps contains dependencies for the web handler.
type Deps struct {
	Registry *app.RegistryService
	Renderer *render.Renderer
	Logger   zerolog.Logger
	Metrics  *metrics.Collector

	// Hasher and AdminTokenHash guard the mutating endpoints. With an
	// empty hash those endpoints answer 403.
	Hasher         ports.Hasher
	AdminTokenHash []byte
}

// NewHandler creates a new JSON API handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		registry:       deps.Registry,
		renderer:       deps.Renderer,
		logger:         deps.Logger,
		metrics:        deps.Metrics,
		hasher:         deps.Hasher,
		adminTokenHash: deps.AdminTokenHash,
	}
}

// Router builds the chi router for the API. The prometheus gatherer is
// optional; when nil the metrics endpoint is omitted.
func (h *Handler) Router(gatherer prometheus.Gatherer, metricsPath string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	if gatherer != nil {
		r.Method(http.MethodGet, metricsPath,
			promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/modules", h.ListModules)
		r.Get("/categories/{category}/modules", h.CategoryModules)
		r.Get("/definitions", h.ListDefinitions)
		r.Get("/definitions/{category}", h.GetDefinition)
		r.Post("/render", h.Render)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Put("/definitions/{category}", h.UpsertDefinition)
			r.Delete("/definitions/{category}", h.RemoveDefinition)
		})
	})

	return r
}

// Health answers liveness probes. Readiness of the override load is
// reported but never fails the check: defaults are always servable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"ready":  h.registry.Ready(),
	})
}

// requestLogger logs one line per request in the zerolog structured
// style.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

// requireAdmin checks the bearer token against the configured bcrypt
// hash. This is transport auth for the admin surface, separate from the
// presentational role gating inside render passes.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.adminTokenHash) == 0 || h.hasher == nil {
			writeError(w, http.StatusForbidden, "admin_disabled", "no admin token configured")
			return
		}

		token := bearerToken(r)
		if token == "" || !h.hasher.Compare(h.adminTokenHash, token) {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid admin token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
