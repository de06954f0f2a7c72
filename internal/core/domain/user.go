package domain

import "time"

// User is a registered account. Records are immutable once created and live
// only as long as the process does.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
