package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/zatekoja/dermrate/internal/api/middleware"
	"github.com/zatekoja/dermrate/internal/domain/entities"
)

// ReviewService defines the review operations used by the handler.
type ReviewService interface {
	Create(ctx context.Context, review *entities.Review) (float64, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*entities.Review, error)
}

// ReviewHandler handles review HTTP requests.
type ReviewHandler struct {
	service ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReview handles POST /api/v1/doctors/{id}/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
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

	var payload createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	review := &entities.Review{
		DoctorID: doctorID,
		UserID:   claims.UserID,
		Rating:   payload.Rating,
		Comment:  payload.Comment,
	}

	average, err := h.service.Create(r.Context(), review)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"review":         review,
		"average_rating": average,
	})
}

// ListReviews handles GET /api/v1/doctors/{id}/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid doctor id")
		return
	}

	reviews, err := h.service.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}
