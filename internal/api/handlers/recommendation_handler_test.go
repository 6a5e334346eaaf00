package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/dermrate/internal/domain/entities"
)

func TestCreateRecommendation(t *testing.T) {
	service := &stubRecommendationService{
		createFn: func(ctx context.Context, doctorID int64, notes string, productIDs []int64) (*entities.Recommendation, error) {
			now := time.Now().UTC()
			return &entities.Recommendation{
				Identifier: "f2c7b9a0-1111-2222-3333-444455556666",
				DoctorID:   doctorID,
				Notes:      notes,
				CreatedAt:  now,
				ExpiresAt:  now.Add(entities.RecommendationValidity),
				ProductIDs: productIDs,
			}, nil
		},
		resolveProductsFn: func(ctx context.Context, productIDs []int64) []entities.ProductDetail {
			return []entities.ProductDetail{{ID: 1, Title: "Moisturizer"}}
		},
	}
	resolver := &stubDoctorResolver{
		getByUserIDFn: func(ctx context.Context, userID int64) (*entities.Doctor, error) {
			return &entities.Doctor{ID: 4, UserID: &userID}, nil
		},
	}
	handler := NewRecommendationHandler(service, resolver)

	body, _ := json.Marshal(map[string]interface{}{
		"notes":       "twice daily",
		"product_ids": []int64{1, 2},
	})
	req := authenticate(httptest.NewRequest(http.MethodPost, "/api/v1/doctors/4/recommendations", bytes.NewReader(body)), 9, "drokafor")
	recorder := serve(http.MethodPost, "/api/v1/doctors/{id}/recommendations", handler.CreateRecommendation, req)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response recommendationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "f2c7b9a0-1111-2222-3333-444455556666", response.Identifier)
	assert.Equal(t, []int64{1, 2}, response.ProductIDs)
	require.Len(t, response.Products, 1)
	assert.Equal(t, "Moisturizer", response.Products[0].Title)
}

func TestCreateRecommendationForOtherDoctor(t *testing.T) {
	resolver := &stubDoctorResolver{
		getByUserIDFn: func(ctx context.Context, userID int64) (*entities.Doctor, error) {
			return &entities.Doctor{ID: 4, UserID: &userID}, nil
		},
	}
	handler := NewRecommendationHandler(&stubRecommendationService{}, resolver)

	body := []byte(`{"product_ids":[1]}`)
	req := authenticate(httptest.NewRequest(http.MethodPost, "/api/v1/doctors/7/recommendations", bytes.NewReader(body)), 9, "drokafor")
	recorder := serve(http.MethodPost, "/api/v1/doctors/{id}/recommendations", handler.CreateRecommendation, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCreateRecommendationWithoutProfile(t *testing.T) {
	handler := NewRecommendationHandler(&stubRecommendationService{}, &stubDoctorResolver{})

	body := []byte(`{"product_ids":[1]}`)
	req := authenticate(httptest.NewRequest(http.MethodPost, "/api/v1/doctors/4/recommendations", bytes.NewReader(body)), 9, "drokafor")
	recorder := serve(http.MethodPost, "/api/v1/doctors/{id}/recommendations", handler.CreateRecommendation, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestGetRecommendation(t *testing.T) {
	now := time.Now().UTC()
	service := &stubRecommendationService{
		getByIdentifierFn: func(ctx context.Context, identifier string) (*entities.Recommendation, error) {
			return &entities.Recommendation{
				Identifier: identifier,
				DoctorID:   4,
				CreatedAt:  now,
				ExpiresAt:  now.Add(entities.RecommendationValidity),
				ProductIDs: []int64{3},
			}, nil
		},
	}
	handler := NewRecommendationHandler(service, &stubDoctorResolver{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/abc-123", nil)
	recorder := serve(http.MethodGet, "/api/v1/recommendations/{identifier}", handler.GetRecommendation, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response recommendationResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "abc-123", response.Identifier)
	assert.Equal(t, int64(4), response.DoctorID)
}

func TestGetRecommendationNotFound(t *testing.T) {
	handler := NewRecommendationHandler(&stubRecommendationService{}, &stubDoctorResolver{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/unknown", nil)
	recorder := serve(http.MethodGet, "/api/v1/recommendations/{identifier}", handler.GetRecommendation, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
