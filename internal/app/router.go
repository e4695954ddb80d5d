package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taneeshamadhu18/video-call-assignment/internal/config"
	"github.com/taneeshamadhu18/video-call-assignment/internal/transport/middleware"
	"github.com/taneeshamadhu18/video-call-assignment/internal/transport/rest"
)

// RouterDeps holds everything NewRouter mounts. Metrics and Limiter are optional.
type RouterDeps struct {
	Logger       *slog.Logger
	API          config.APIConfig
	CORS         config.CORSConfig
	Health       *rest.HealthHandler
	Participants *rest.ParticipantHandler
	Metrics      *middleware.Metrics
	Gatherer     prometheus.Gatherer
	Limiter      *middleware.RateLimiter
}

// NewRouter builds the HTTP handler. Participant routes are served both at
// the root and under the configured API prefix.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}

	r.NotFound(rest.NotFound)
	r.MethodNotAllowed(rest.MethodNotAllowed)

	r.Get("/", d.Health.Root)
	r.Get("/health", d.Health.Health)
	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	mount := func(r chi.Router) { participantRoutes(r, d) }
	mount(r)
	if d.API.Prefix != "" && d.API.Prefix != "/" {
		r.Route(d.API.Prefix, func(r chi.Router) {
			r.Get("/", d.Health.Root)
			r.Get("/health", d.Health.Health)
			mount(r)
		})
	}

	return r
}

func participantRoutes(r chi.Router, d RouterDeps) {
	h := d.Participants

	r.Get("/participants", h.List)
	r.Get("/participants/count", h.Count)
	r.Get("/participants/{id}", h.Get)

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(d.Limiter.Limit(d.API.WriteRatePerMin))
		}
		for _, method := range []string{http.MethodPatch, http.MethodPut} {
			r.MethodFunc(method, "/participants/{id}/microphone", h.SetMicrophone)
			r.MethodFunc(method, "/participants/{id}/camera", h.SetCamera)
			r.MethodFunc(method, "/participants/{id}/status", h.SetStatus)
			r.MethodFunc(method, "/participants/{id}/media", h.SetMedia)
		}
	})
}
