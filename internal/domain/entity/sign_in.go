package entity

import "time"

// SignIn is one user's attendance record for one calendar day.
// Records are append-only: created by the button intake, deleted only
// by an explicit admin command, never mutated.
type SignIn struct {
	ID         int64
	UserID     string
	Username   string
	Timestamp  time.Time // UTC
	SignInType string
}
