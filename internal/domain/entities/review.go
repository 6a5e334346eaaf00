package entities

import "time"

// MaxCommentLength bounds review comments.
const MaxCommentLength = 700

// Review is a single rating with an optional comment. Reviews are
// immutable once created.
type Review struct {
	ID        int64     `json:"id" db:"id"`
	DoctorID  int64     `json:"doctor_id" db:"doctor_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
