package contract

import (
	"context"
	"time"

	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	SignIn() SignInRepo
	Schedule() ScheduleRepo
}

// SignInRepo defines the contract for the sign-in record store.
// Period arguments are half-open UTC intervals [from, to).
type SignInRepo interface {
	Create(entry *entity.SignIn) error
	Exists(userID string, from, to time.Time) (bool, error)
	ListByPeriod(from, to time.Time) ([]*entity.SignIn, error)
	DeleteByUserAndPeriod(userID string, from, to time.Time) (int64, error)
}

// ScheduleRepo defines the contract for the schedule config row
type ScheduleRepo interface {
	Create(cfg *entity.ScheduleConfig) error
	Get() (*entity.ScheduleConfig, error)
	Update(cfg *entity.ScheduleConfig) error
}
