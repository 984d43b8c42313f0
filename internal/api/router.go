package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/stef4k/sleep-dashboard/docs"
	"github.com/stef4k/sleep-dashboard/internal/api/handler"
	"github.com/stef4k/sleep-dashboard/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	sessionHandler     *handler.SessionHandler
	dashboardHandler   *handler.DashboardHandler
	correlationHandler *handler.CorrelationHandler
	chartHandler       *handler.ChartHandler
	insightsHandler    *handler.InsightsHandler
}

func NewRouter(
	sessionHandler *handler.SessionHandler,
	dashboardHandler *handler.DashboardHandler,
	correlationHandler *handler.CorrelationHandler,
	chartHandler *handler.ChartHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		sessionHandler:     sessionHandler,
		dashboardHandler:   dashboardHandler,
		correlationHandler: correlationHandler,
		chartHandler:       chartHandler,
		insightsHandler:    insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Sessions
		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", rt.sessionHandler.List)
			r.Get("/{sessionId}", rt.sessionHandler.GetByID)
		})

		// Dashboard panels
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", rt.dashboardHandler.GetSummary)
			r.Get("/compare", rt.dashboardHandler.GetCompare)
			r.Get("/recommendation", rt.dashboardHandler.GetRecommendation)
			r.Get("/chronotype", rt.dashboardHandler.GetChronotype)
			r.Get("/quote", rt.dashboardHandler.GetQuote)
			r.Get("/insights", rt.insightsHandler.GetInsights)
			r.Post("/insights/feedback", rt.insightsHandler.PostFeedback)
		})

		// Correlations
		r.Route("/correlations", func(r chi.Router) {
			r.Get("/", rt.correlationHandler.GetCorrelation)
			r.Get("/matrix", rt.correlationHandler.GetMatrix)
			r.Get("/metrics", rt.correlationHandler.ListMetrics)
		})

		// Chart series
		r.Route("/charts", func(r chi.Router) {
			r.Get("/heatmap", rt.chartHandler.GetHeatmap)
			r.Get("/rhythm", rt.chartHandler.GetRhythm)
			r.Get("/scatter", rt.chartHandler.GetScatter)
			r.Get("/funnel", rt.chartHandler.GetFunnel)
			r.Get("/parallel", rt.chartHandler.GetParallel)
		})
	})

	return r
}
