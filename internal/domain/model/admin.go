package model

import "time"

// AdminCredential is the singleton operator credential. Only the
// bcrypt hash of the password is ever stored.
type AdminCredential struct {
	ID           int64
	AdminID      string
	PasswordHash string
	CreatedAt    time.Time
}
