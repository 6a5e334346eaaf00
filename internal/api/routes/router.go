package routes

import (
	"net/http"

	"github.com/zatekoja/dermrate/internal/api/handlers"
	"github.com/zatekoja/dermrate/internal/api/middleware"
	"github.com/zatekoja/dermrate/internal/auth"
	"github.com/zatekoja/dermrate/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler           *handlers.AuthHandler
	doctorHandler         *handlers.DoctorHandler
	reviewHandler         *handlers.ReviewHandler
	recommendationHandler *handlers.RecommendationHandler
	analyticsHandler      *handlers.AnalyticsHandler

	jwtManager *auth.JWTManager
	metrics    *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	doctorHandler *handlers.DoctorHandler,
	reviewHandler *handlers.ReviewHandler,
	recommendationHandler *handlers.RecommendationHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	jwtManager *auth.JWTManager,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		authHandler:           authHandler,
		doctorHandler:         doctorHandler,
		reviewHandler:         reviewHandler,
		recommendationHandler: recommendationHandler,
		analyticsHandler:      analyticsHandler,

		jwtManager: jwtManager,
		metrics:    metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	protected := middleware.AuthMiddleware(r.jwtManager)

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /api/v1/users", r.authHandler.Signup)
	r.mux.HandleFunc("POST /api/v1/auth/token", r.authHandler.Token)
	r.mux.Handle("GET /api/v1/users/me", protected(http.HandlerFunc(r.authHandler.Me)))

	// Doctor endpoints
	r.mux.Handle("POST /api/v1/doctors", protected(http.HandlerFunc(r.doctorHandler.CreateDoctor)))
	r.mux.HandleFunc("GET /api/v1/doctors", r.doctorHandler.ListDoctors)
	r.mux.HandleFunc("GET /api/v1/doctors/{id}", r.doctorHandler.GetDoctor)

	// Review endpoints
	r.mux.Handle("POST /api/v1/doctors/{id}/reviews", protected(http.HandlerFunc(r.reviewHandler.CreateReview)))
	r.mux.HandleFunc("GET /api/v1/doctors/{id}/reviews", r.reviewHandler.ListReviews)

	// Recommendation endpoints
	r.mux.Handle("POST /api/v1/doctors/{id}/recommendations", protected(http.HandlerFunc(r.recommendationHandler.CreateRecommendation)))
	r.mux.HandleFunc("GET /api/v1/recommendations/{identifier}", r.recommendationHandler.GetRecommendation)

	// Analytics endpoint for the authenticated doctor
	r.mux.Handle("GET /api/v1/doctors/analytics/me", protected(http.HandlerFunc(r.analyticsHandler.MyAnalytics)))

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
