package entity

import "time"

// ScheduleConfig holds the daily prompt schedule. A single row exists;
// it is seeded from environment defaults on first startup and updated
// by admin commands.
type ScheduleConfig struct {
	ID              int64
	SignInHour      int // 0-23, local time
	SignInMinute    int // 0-59
	TargetChannelID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
