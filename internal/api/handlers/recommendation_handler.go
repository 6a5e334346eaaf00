package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/zatekoja/dermrate/internal/api/middleware"
	"github.com/zatekoja/dermrate/internal/domain/entities"
	apperrors "github.com/zatekoja/dermrate/pkg/errors"
)

// RecommendationService defines the recommendation operations used by
// the handler.
type RecommendationService interface {
	Create(ctx context.Context, doctorID int64, notes string, productIDs []int64) (*entities.Recommendation, error)
	GetByIdentifier(ctx context.Context, identifier string) (*entities.Recommendation, error)
	ResolveProducts(ctx context.Context, productIDs []int64) []entities.ProductDetail
}

// DoctorResolver resolves the doctor profile linked to a user account.
type DoctorResolver interface {
	GetByUserID(ctx context.Context, userID int64) (*entities.Doctor, error)
}

// RecommendationHandler handles recommendation HTTP requests.
type RecommendationHandler struct {
	service RecommendationService
	doctors DoctorResolver
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(service RecommendationService, doctors DoctorResolver) *RecommendationHandler {
	return &RecommendationHandler{service: service, doctors: doctors}
}

type createRecommendationRequest struct {
	Notes      string  `json:"notes"`
	ProductIDs []int64 `json:"product_ids"`
}

type recommendationResponse struct {
	Identifier string                   `json:"identifier"`
	DoctorID   int64                    `json:"doctor_id"`
	Notes      string                   `json:"notes"`
	CreatedAt  string                   `json:"created_at"`
	ExpiresAt  string                   `json:"expires_at"`
	ProductIDs []int64                  `json:"product_ids"`
	Products   []entities.ProductDetail `json:"products"`
}

// CreateRecommendation handles POST /api/v1/doctors/{id}/recommendations
func (h *RecommendationHandler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	doctorID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid doctor id")
		return
	}

	// Only the doctor who owns the profile may recommend under it.
	doctor, err := h.doctors.GetByUserID(r.Context(), claims.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithError(w, http.StatusForbidden, "user has no doctor profile")
			return
		}
		respondWithServiceError(w, err)
		return
	}
	if doctor.ID != doctorID {
		respondWithError(w, http.StatusForbidden, "cannot recommend on behalf of another doctor")
		return
	}

	var payload createRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	rec, err := h.service.Create(r.Context(), doctorID, payload.Notes, payload.ProductIDs)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, h.buildResponse(r.Context(), rec))
}

// GetRecommendation handles GET /api/v1/recommendations/{identifier}
func (h *RecommendationHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("identifier")
	if identifier == "" {
		respondWithError(w, http.StatusBadRequest, "recommendation identifier is required")
		return
	}

	rec, err := h.service.GetByIdentifier(r.Context(), identifier)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.buildResponse(r.Context(), rec))
}

// buildResponse enriches the recommendation with catalog details.
// Product resolution is best effort; unresolvable ids stay in
// product_ids with no matching entry in products.
func (h *RecommendationHandler) buildResponse(ctx context.Context, rec *entities.Recommendation) recommendationResponse {
	return recommendationResponse{
		Identifier: rec.Identifier,
		DoctorID:   rec.DoctorID,
		Notes:      rec.Notes,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		ExpiresAt:  rec.ExpiresAt.Format(time.RFC3339),
		ProductIDs: rec.ProductIDs,
		Products:   h.service.ResolveProducts(ctx, rec.ProductIDs),
	}
}
