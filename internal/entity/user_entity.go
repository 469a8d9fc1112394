package entity

import (
	"time"
)

// User is the account identity. There is no profile-edit or deletion path;
// a user record is only ever written at registration.
type User struct {
	Id           uint
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
