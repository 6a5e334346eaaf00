package repositories

import (
	"context"

	"github.com/zatekoja/dermrate/internal/domain/entities"
)

// DoctorFilter narrows doctor listings.
type DoctorFilter struct {
	MinRating float64
	Offset    int
	Limit     int
}

// DoctorRepository defines persistence operations for doctors.
// AverageRating is never written through this interface; it is
// maintained by ReviewRepository.CreateAndRecalculate.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *entities.Doctor) error
	GetByID(ctx context.Context, id int64) (*entities.Doctor, error)
	GetByUserID(ctx context.Context, userID int64) (*entities.Doctor, error)
	List(ctx context.Context, filter DoctorFilter) ([]*entities.Doctor, error)
}
