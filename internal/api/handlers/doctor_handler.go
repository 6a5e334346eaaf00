package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zatekoja/dermrate/internal/api/middleware"
	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	apperrors "github.com/zatekoja/dermrate/pkg/errors"
)

const defaultDoctorPageSize = 10

// DoctorService defines the doctor operations used by the handler.
type DoctorService interface {
	Create(ctx context.Context, userID int64, name, specialization string) (*entities.Doctor, error)
	GetWithReviews(ctx context.Context, id int64) (*entities.Doctor, []*entities.Review, error)
	List(ctx context.Context, filter repositories.DoctorFilter) ([]*entities.Doctor, error)
}

// DoctorHandler handles doctor-profile HTTP requests.
type DoctorHandler struct {
	service DoctorService
}

// NewDoctorHandler creates a new doctor handler.
func NewDoctorHandler(service DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

type createDoctorRequest struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// CreateDoctor handles POST /api/v1/doctors
func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var payload createDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	doctor, err := h.service.Create(r.Context(), claims.UserID, payload.Name, payload.Specialization)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, doctor)
}

// GetDoctor handles GET /api/v1/doctors/{id}
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid doctor id")
		return
	}

	doctor, reviews, err := h.service.GetWithReviews(r.Context(), doctorID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"doctor":  doctor,
		"reviews": reviews,
	})
}

// ListDoctors handles GET /api/v1/doctors
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	filter := repositories.DoctorFilter{
		Limit: defaultDoctorPageSize,
	}

	query := r.URL.Query()
	if raw := query.Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			respondWithError(w, http.StatusBadRequest, "min_rating must be a number between 0 and 5")
			return
		}
		filter.MinRating = minRating
	}
	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			respondWithError(w, http.StatusBadRequest, "skip must be a non-negative integer")
			return
		}
		filter.Offset = skip
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			respondWithError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		filter.Limit = limit
	}

	doctors, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// Helper functions

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithServiceError maps application error types to HTTP status
// codes. Unclassified errors never leak their message to the client.
func respondWithServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeConflict:
			respondWithError(w, http.StatusConflict, appErr.Message)
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusUnauthorized, appErr.Message)
		case apperrors.ErrorTypeExternal:
			respondWithError(w, http.StatusBadGateway, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
