package entities

import "time"

// RecommendationValidity is the fixed window during which a
// recommendation can be looked up by its public identifier.
const RecommendationValidity = 7 * 24 * time.Hour

// Recommendation is a doctor-issued bundle of suggested products.
// Identifier is the public, opaque handle; the row id never leaves the
// persistence layer boundary.
type Recommendation struct {
	ID         int64     `json:"-" db:"id"`
	Identifier string    `json:"identifier" db:"identifier"`
	DoctorID   int64     `json:"doctor_id" db:"doctor_id"`
	Notes      string    `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
	ProductIDs []int64   `json:"product_ids" db:"-"`
}

// Expired reports whether the recommendation is past its validity window
// at the given instant.
func (r *Recommendation) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
