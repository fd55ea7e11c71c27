package contract

import (
	"time"

	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
)

// SignInService handles button-click intake and admin record queries.
type SignInService interface {
	RegisterButtonClick(click entity.ButtonClick)
	ListForDate(date time.Time) ([]*entity.SignIn, error)
	DeleteForDate(userID string, date time.Time) (int64, error)
}

// Notifier runs one notification cycle: delete the previous prompt,
// send a new one, persist the new message state.
type Notifier interface {
	SendDailySignIn() error
}

// ScheduleService exposes schedule config reads and admin updates.
type ScheduleService interface {
	GetConfig() (*entity.ScheduleConfig, error)
	SetTime(hour, minute int) error
	SetChannel(channelID string) error
}
