package services

import (
	"context"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	"github.com/zatekoja/dermrate/pkg/errors"
)

// Function-backed stubs for the repository and provider interfaces.
// Unset functions return not-found or zero values so each test only
// wires what it cares about.

type stubUserRepo struct {
	createFn        func(ctx context.Context, user *entities.User) error
	getByUsernameFn func(ctx context.Context, username string) (*entities.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return nil, errors.NewNotFoundError("user not found")
}

type stubDoctorRepo struct {
	createFn      func(ctx context.Context, doctor *entities.Doctor) error
	getByIDFn     func(ctx context.Context, id int64) (*entities.Doctor, error)
	getByUserIDFn func(ctx context.Context, userID int64) (*entities.Doctor, error)
}

func (s *stubDoctorRepo) Create(ctx context.Context, doctor *entities.Doctor) error {
	if s.createFn != nil {
		return s.createFn(ctx, doctor)
	}
	doctor.ID = 1
	return nil
}

func (s *stubDoctorRepo) GetByID(ctx context.Context, id int64) (*entities.Doctor, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, errors.NewNotFoundError("doctor not found")
}

func (s *stubDoctorRepo) GetByUserID(ctx context.Context, userID int64) (*entities.Doctor, error) {
	if s.getByUserIDFn != nil {
		return s.getByUserIDFn(ctx, userID)
	}
	return nil, errors.NewNotFoundError("doctor not found")
}

func (s *stubDoctorRepo) List(ctx context.Context, filter repositories.DoctorFilter) ([]*entities.Doctor, error) {
	return nil, nil
}

type stubReviewRepo struct {
	createAndRecalcFn func(ctx context.Context, review *entities.Review) (float64, error)
	listByDoctorFn    func(ctx context.Context, doctorID int64) ([]*entities.Review, error)
	countByDoctorFn   func(ctx context.Context, doctorID int64) (int, error)
	monthlyTrendsFn   func(ctx context.Context, doctorID int64) ([]entities.RatingTrendPoint, error)
	commentsFn        func(ctx context.Context, doctorID int64) ([]string, error)
}

func (s *stubReviewRepo) CreateAndRecalculate(ctx context.Context, review *entities.Review) (float64, error) {
	if s.createAndRecalcFn != nil {
		return s.createAndRecalcFn(ctx, review)
	}
	return 0, nil
}

func (s *stubReviewRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]*entities.Review, error) {
	if s.listByDoctorFn != nil {
		return s.listByDoctorFn(ctx, doctorID)
	}
	return nil, nil
}

func (s *stubReviewRepo) CountByDoctor(ctx context.Context, doctorID int64) (int, error) {
	if s.countByDoctorFn != nil {
		return s.countByDoctorFn(ctx, doctorID)
	}
	return 0, nil
}

func (s *stubReviewRepo) MonthlyTrends(ctx context.Context, doctorID int64) ([]entities.RatingTrendPoint, error) {
	if s.monthlyTrendsFn != nil {
		return s.monthlyTrendsFn(ctx, doctorID)
	}
	return nil, nil
}

func (s *stubReviewRepo) CommentsByDoctor(ctx context.Context, doctorID int64) ([]string, error) {
	if s.commentsFn != nil {
		return s.commentsFn(ctx, doctorID)
	}
	return nil, nil
}

type stubRecommendationRepo struct {
	createFn            func(ctx context.Context, rec *entities.Recommendation) error
	getByIdentifierFn   func(ctx context.Context, identifier string) (*entities.Recommendation, error)
	topProductsFn       func(ctx context.Context, doctorID int64, limit int) ([]entities.ProductCount, error)
	countByDoctorFn     func(ctx context.Context, doctorID int64) (int, error)
	countLinksFn        func(ctx context.Context, doctorID int64) (int, error)
}

func (s *stubRecommendationRepo) Create(ctx context.Context, rec *entities.Recommendation) error {
	if s.createFn != nil {
		return s.createFn(ctx, rec)
	}
	rec.ID = 1
	return nil
}

func (s *stubRecommendationRepo) GetByIdentifier(ctx context.Context, identifier string) (*entities.Recommendation, error) {
	if s.getByIdentifierFn != nil {
		return s.getByIdentifierFn(ctx, identifier)
	}
	return nil, errors.NewNotFoundError("recommendation not found")
}

func (s *stubRecommendationRepo) TopProducts(ctx context.Context, doctorID int64, limit int) ([]entities.ProductCount, error) {
	if s.topProductsFn != nil {
		return s.topProductsFn(ctx, doctorID, limit)
	}
	return nil, nil
}

func (s *stubRecommendationRepo) CountByDoctor(ctx context.Context, doctorID int64) (int, error) {
	if s.countByDoctorFn != nil {
		return s.countByDoctorFn(ctx, doctorID)
	}
	return 0, nil
}

func (s *stubRecommendationRepo) CountLinksByDoctor(ctx context.Context, doctorID int64) (int, error) {
	if s.countLinksFn != nil {
		return s.countLinksFn(ctx, doctorID)
	}
	return 0, nil
}

type stubCatalog struct {
	getProductFn func(ctx context.Context, productID int64) (*entities.ProductDetail, error)
}

func (s *stubCatalog) GetProduct(ctx context.Context, productID int64) (*entities.ProductDetail, error) {
	if s.getProductFn != nil {
		return s.getProductFn(ctx, productID)
	}
	return nil, errors.NewExternalError("catalog unavailable", nil)
}
