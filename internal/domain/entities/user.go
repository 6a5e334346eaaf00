package entities

// User is an account that can review doctors and, when linked to a
// doctor profile, issue recommendations.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
}
