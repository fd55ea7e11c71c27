package database

import (
	"context"
	"fmt"

	"github.com/morningbot/morning-signin-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	signInRepo   contract.SignInRepo
	scheduleRepo contract.ScheduleRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.signInRepo = newSignInRepository(i.db.conn)
	i.scheduleRepo = newScheduleRepository(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		signInRepo:   newSignInRepository(db),
		scheduleRepo: newScheduleRepository(db),
	}
}

// SignIn returns the sign-in repository
func (i *instance) SignIn() contract.SignInRepo {
	return i.signInRepo
}

// Schedule returns the schedule config repository
func (i *instance) Schedule() contract.ScheduleRepo {
	return i.scheduleRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
