package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/zatekoja/dermrate/internal/api/middleware"
	"github.com/zatekoja/dermrate/internal/auth"
	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	"github.com/zatekoja/dermrate/pkg/errors"
)

// authenticate attaches claims for the given user, as the auth
// middleware would after validating a token.
func authenticate(r *http.Request, userID int64, username string) *http.Request {
	claims := &auth.Claims{UserID: userID, Username: username}
	return r.WithContext(middleware.ContextWithClaims(r.Context(), claims))
}

// serve routes the request through a ServeMux pattern so r.PathValue
// works inside the handler.
func serve(method, pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(method+" "+pattern, handler)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}

type stubDoctorService struct {
	createFn         func(ctx context.Context, userID int64, name, specialization string) (*entities.Doctor, error)
	getWithReviewsFn func(ctx context.Context, id int64) (*entities.Doctor, []*entities.Review, error)
	listFn           func(ctx context.Context, filter repositories.DoctorFilter) ([]*entities.Doctor, error)
}

func (s *stubDoctorService) Create(ctx context.Context, userID int64, name, specialization string) (*entities.Doctor, error) {
	if s.createFn != nil {
		return s.createFn(ctx, userID, name, specialization)
	}
	return &entities.Doctor{ID: 1, UserID: &userID, Name: name, Specialization: specialization}, nil
}

func (s *stubDoctorService) GetWithReviews(ctx context.Context, id int64) (*entities.Doctor, []*entities.Review, error) {
	if s.getWithReviewsFn != nil {
		return s.getWithReviewsFn(ctx, id)
	}
	return nil, nil, errors.NewNotFoundError("doctor not found")
}

func (s *stubDoctorService) List(ctx context.Context, filter repositories.DoctorFilter) ([]*entities.Doctor, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, nil
}

type stubDoctorResolver struct {
	getByUserIDFn func(ctx context.Context, userID int64) (*entities.Doctor, error)
}

func (s *stubDoctorResolver) GetByUserID(ctx context.Context, userID int64) (*entities.Doctor, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return nil, errors.NewNotFoundError("doctor not found")
}

type stubReviewService struct {
	createFn       func(ctx context.Context, review *entities.Review) (float64, error)
	listByDoctorFn func(ctx context.Context, doctorID int64) ([]*entities.Review, error)
}

func (s *stubReviewService) Create(ctx context.Context, review *entities.Review) (float64, error) {
	if s.createFn != nil {
		return s.createFn(ctx, review)
	}
	return 0, nil
}

func (s *stubReviewService) ListByDoctor(ctx context.Context, doctorID int64) ([]*entities.Review, error) {
	if s.listByDoctorFn != nil {
		return s.listByDoctorFn(ctx, doctorID)
	}
	return nil, nil
}

type stubRecommendationService struct {
	createFn          func(ctx context.Context, doctorID int64, notes string, productIDs []int64) (*entities.Recommendation, error)
	getByIdentifierFn func(ctx context.Context, identifier string) (*entities.Recommendation, error)
	resolveProductsFn func(ctx context.Context, productIDs []int64) []entities.ProductDetail
}

func (s *stubRecommendationService) Create(ctx context.Context, doctorID int64, notes string, productIDs []int64) (*entities.Recommendation, error) {
	if s.createFn != nil {
		return s.createFn(ctx, doctorID, notes, productIDs)
	}
	return nil, errors.NewValidationError("at least one product is required")
}

func (s *stubRecommendationService) GetByIdentifier(ctx context.Context, identifier string) (*entities.Recommendation, error) {
	if s.getByIdentifierFn != nil {
		return s.getByIdentifierFn(ctx, identifier)
	}
	return nil, errors.NewNotFoundError("recommendation not found")
}

func (s *stubRecommendationService) ResolveProducts(ctx context.Context, productIDs []int64) []entities.ProductDetail {
	if s.resolveProductsFn != nil {
		return s.resolveProductsFn(ctx, productIDs)
	}
	return []entities.ProductDetail{}
}

type stubAnalyticsService struct {
	buildFn func(ctx context.Context, doctorID int64) (*entities.DoctorAnalytics, error)
}

func (s *stubAnalyticsService) BuildAnalytics(ctx context.Context, doctorID int64) (*entities.DoctorAnalytics, error) {
	if s.buildFn != nil {
		return s.buildFn(ctx, doctorID)
	}
	return &entities.DoctorAnalytics{}, nil
}

type stubUserService struct {
	registerFn     func(ctx context.Context, username, password string) (*entities.User, error)
	authenticateFn func(ctx context.Context, username, password string) (*entities.User, error)
	getByIDFn      func(ctx context.Context, id int64) (*entities.User, error)
}

func (s *stubUserService) Register(ctx context.Context, username, password string) (*entities.User, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, username, password)
	}
	return &entities.User{ID: 1, Username: username}, nil
}

func (s *stubUserService) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	if s.authenticateFn != nil {
		return s.authenticateFn(ctx, username, password)
	}
	return nil, errors.NewUnauthorizedError("invalid username or password")
}

func (s *stubUserService) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &entities.User{ID: id, Username: "drokafor"}, nil
}
