package database

import (
	"fmt"
	"time"

	"github.com/morningbot/morning-signin-bot/internal/domain/contract"
	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
)

type signInRepository struct {
	db dbConn
}

func newSignInRepository(db dbConn) contract.SignInRepo {
	return &signInRepository{db: db}
}

func (r *signInRepository) Create(entry *entity.SignIn) error {
	query := `
		INSERT INTO sign_ins (user_id, username, timestamp, sign_in_type)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		entry.UserID,
		entry.Username,
		entry.Timestamp.UTC(),
		entry.SignInType,
	)
	if err != nil {
		return fmt.Errorf("failed to create sign-in: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	entry.ID = id
	return nil
}

// Exists reports whether the user has a sign-in with timestamp in
// [from, to). There is deliberately no unique constraint backing this:
// check-then-insert stays a best-effort idempotency guard.
func (r *signInRepository) Exists(userID string, from, to time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sign_ins
			WHERE user_id = ? AND timestamp >= ? AND timestamp < ?
		)
	`

	var exists bool
	err := r.db.QueryRow(query, userID, from.UTC(), to.UTC()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check sign-in existence: %w", err)
	}

	return exists, nil
}

func (r *signInRepository) ListByPeriod(from, to time.Time) ([]*entity.SignIn, error) {
	query := `
		SELECT id, user_id, username, timestamp, sign_in_type
		FROM sign_ins
		WHERE timestamp >= ? AND timestamp < ?
		ORDER BY timestamp ASC
	`

	rows, err := r.db.Query(query, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list sign-ins: %w", err)
	}
	defer rows.Close()

	var entries []*entity.SignIn
	for rows.Next() {
		entry := &entity.SignIn{}
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Username,
			&entry.Timestamp,
			&entry.SignInType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sign-in: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sign-ins: %w", err)
	}

	return entries, nil
}

func (r *signInRepository) DeleteByUserAndPeriod(userID string, from, to time.Time) (int64, error) {
	query := `
		DELETE FROM sign_ins
		WHERE user_id = ? AND timestamp >= ? AND timestamp < ?
	`

	result, err := r.db.Exec(query, userID, from.UTC(), to.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete sign-ins: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return count, nil
}
