package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cricket_http_requests_total",
		Help: "HTTP requests by route and status",
	}, []string{"route", "method", "status"})
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cricket_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

func httpMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Routes assembles the full router.
func (h *Handler) Routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(httpMetrics)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/data", h.GetDataset)
		r.Post("/data", h.UploadDataset)

		r.Get("/players", h.ListPlayers)
		r.Get("/players/{playerID}", h.GetPlayer)
		r.Get("/players/{playerID}/badges", h.GetPlayerBadges)

		r.Get("/matches", h.ListMatches)
		r.Get("/matches/{matchID}", h.GetScorecard)

		r.Get("/badges", h.GetBadgeCatalog)
		r.Get("/badges/scan", h.ScanBadges)
		r.Post("/badges/preview", h.PreviewBadge)

		r.Get("/leaderboard/{stat}", h.GetLeaderboard)
		r.Get("/leaderboard/career/{field}", h.GetCareerLeaderboard)

		r.Get("/venues", h.GetVenues)
		r.Get("/opponents", h.GetOpponents)
		r.Get("/team", h.GetTeamStats)
	})

	return r
}
