package entities

import "time"

// Doctor is a rated professional. AverageRating is a derived field that
// is maintained inside the same transaction as every review insert; it
// must never be written by callers directly.
type Doctor struct {
	ID             int64     `json:"id" db:"id"`
	UserID         *int64    `json:"user_id,omitempty" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Specialization string    `json:"specialization" db:"specialization"`
	AverageRating  float64   `json:"average_rating" db:"average_rating"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
