package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nexweb-studio/agency-api/internal/audit"
	httpmiddleware "github.com/nexweb-studio/agency-api/internal/http/middleware"
	"github.com/nexweb-studio/agency-api/internal/leads"
	"github.com/nexweb-studio/agency-api/internal/roi"
	"github.com/nexweb-studio/agency-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger       *logging.Logger
	LeadsHandler *leads.Handler
	AuditHandler *audit.Handler
	ROIHandler   *roi.Handler

	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Per-IP throttle on the public form endpoints. Zero disables it.
	RateLimitRPS   float64
	RateLimitBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
			api.Use(httpmiddleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		}

		api.Post("/callback", cfg.LeadsHandler.SubmitCallback)
		api.Post("/roi-email", cfg.LeadsHandler.SubmitROIEmail)
		api.Post("/audit-report", cfg.LeadsHandler.RequestAuditReport)
		api.Post("/audit", cfg.AuditHandler.Run)
		api.Post("/roi", cfg.ROIHandler.Estimate)
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
