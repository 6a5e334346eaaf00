package services

import (
	"context"
	"strings"
	"time"

	"github.com/zatekoja/dermrate/internal/domain/entities"
	"github.com/zatekoja/dermrate/internal/domain/repositories"
	"github.com/zatekoja/dermrate/pkg/errors"
)

// DoctorService manages dermatologist profiles.
type DoctorService struct {
	doctorRepo repositories.DoctorRepository
	reviewRepo repositories.ReviewRepository
}

func NewDoctorService(doctorRepo repositories.DoctorRepository, reviewRepo repositories.ReviewRepository) *DoctorService {
	return &DoctorService{doctorRepo: doctorRepo, reviewRepo: reviewRepo}
}

// Create registers a doctor profile linked to the acting user. A user may
// have at most one profile.
func (s *DoctorService) Create(ctx context.Context, userID int64, name, specialization string) (*entities.Doctor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("doctor name is required")
	}
	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		return nil, errors.NewValidationError("specialization is required")
	}

	if _, err := s.doctorRepo.GetByUserID(ctx, userID); err == nil {
		return nil, errors.NewConflictError("user is already linked to a doctor profile")
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	doctor := &entities.Doctor{
		UserID:         &userID,
		Name:           name,
		Specialization: specialization,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// GetByID loads a single doctor profile.
func (s *DoctorService) GetByID(ctx context.Context, id int64) (*entities.Doctor, error) {
	return s.doctorRepo.GetByID(ctx, id)
}

// GetByUserID loads the profile linked to a user account.
func (s *DoctorService) GetByUserID(ctx context.Context, userID int64) (*entities.Doctor, error) {
	return s.doctorRepo.GetByUserID(ctx, userID)
}

// GetWithReviews loads a doctor together with their reviews, newest first.
func (s *DoctorService) GetWithReviews(ctx context.Context, id int64) (*entities.Doctor, []*entities.Review, error) {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	reviews, err := s.reviewRepo.ListByDoctor(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return doctor, reviews, nil
}

// List returns doctors matching the filter, ordered by id.
func (s *DoctorService) List(ctx context.Context, filter repositories.DoctorFilter) ([]*entities.Doctor, error) {
	return s.doctorRepo.List(ctx, filter)
}
