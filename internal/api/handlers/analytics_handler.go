package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/dermrate/internal/api/middleware"
	"github.com/zatekoja/dermrate/internal/domain/entities"
	apperrors "github.com/zatekoja/dermrate/pkg/errors"
)

// AnalyticsService defines the analytics operations used by the handler.
type AnalyticsService interface {
	BuildAnalytics(ctx context.Context, doctorID int64) (*entities.DoctorAnalytics, error)
}

// AnalyticsHandler serves the doctor dashboard analytics report.
type AnalyticsHandler struct {
	service AnalyticsService
	doctors DoctorResolver
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service AnalyticsService, doctors DoctorResolver) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, doctors: doctors}
}

// MyAnalytics handles GET /api/v1/doctors/analytics/me
func (h *AnalyticsHandler) MyAnalytics(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	doctor, err := h.doctors.GetByUserID(r.Context(), claims.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithError(w, http.StatusNotFound, "user has no doctor profile")
			return
		}
		respondWithServiceError(w, err)
		return
	}

	report, err := h.service.BuildAnalytics(r.Context(), doctor.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
