package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/morningbot/morning-signin-bot/internal/domain/contract"
	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
)

type scheduleRepository struct {
	db dbConn
}

func newScheduleRepository(db dbConn) contract.ScheduleRepo {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(cfg *entity.ScheduleConfig) error {
	query := `
		INSERT INTO schedule_configs (sign_in_hour, sign_in_minute, target_channel_id)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query,
		cfg.SignInHour,
		cfg.SignInMinute,
		cfg.TargetChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to create schedule config: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	cfg.ID = id
	return nil
}

// Get returns the schedule config row, or (nil, nil) when none exists
// yet (first startup before seeding).
func (r *scheduleRepository) Get() (*entity.ScheduleConfig, error) {
	cfg := &entity.ScheduleConfig{}
	query := `
		SELECT id, sign_in_hour, sign_in_minute, target_channel_id, created_at, updated_at
		FROM schedule_configs
		ORDER BY id
		LIMIT 1
	`

	err := r.db.QueryRow(query).Scan(
		&cfg.ID,
		&cfg.SignInHour,
		&cfg.SignInMinute,
		&cfg.TargetChannelID,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule config: %w", err)
	}

	return cfg, nil
}

func (r *scheduleRepository) Update(cfg *entity.ScheduleConfig) error {
	query := `
		UPDATE schedule_configs SET
			sign_in_hour = ?,
			sign_in_minute = ?,
			target_channel_id = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		cfg.SignInHour,
		cfg.SignInMinute,
		cfg.TargetChannelID,
		time.Now().UTC(),
		cfg.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule config: %w", err)
	}

	return nil
}
