package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morningbot/morning-signin-bot/internal/domain/contract"
	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
)

func TestScheduleRepository_GetWithoutConfig(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	repo := newScheduleRepository(db.conn)

	cfg, err := repo.Get()

	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestScheduleRepository_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	repo := newScheduleRepository(db.conn)

	cfg := &entity.ScheduleConfig{
		SignInHour:      8,
		SignInMinute:    0,
		TargetChannelID: "C123",
	}
	require.NoError(t, repo.Create(cfg))
	assert.NotZero(t, cfg.ID)

	got, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 8, got.SignInHour)
	assert.Equal(t, 0, got.SignInMinute)
	assert.Equal(t, "C123", got.TargetChannelID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestScheduleRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	repo := newScheduleRepository(db.conn)

	cfg := &entity.ScheduleConfig{SignInHour: 8, SignInMinute: 0, TargetChannelID: "C123"}
	require.NoError(t, repo.Create(cfg))

	cfg.SignInHour = 9
	cfg.SignInMinute = 30
	cfg.TargetChannelID = "C456"
	require.NoError(t, repo.Update(cfg))

	got, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 9, got.SignInHour)
	assert.Equal(t, 30, got.SignInMinute)
	assert.Equal(t, "C456", got.TargetChannelID)
}

func TestWithTransaction_Commit(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dm := NewInstance(db)

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		return tx.Schedule().Create(&entity.ScheduleConfig{SignInHour: 8, SignInMinute: 0, TargetChannelID: "C123"})
	})
	require.NoError(t, err)

	cfg, err := dm.Schedule().Get()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "C123", cfg.TargetChannelID)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dm := NewInstance(db)

	wantErr := errors.New("boom")
	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Schedule().Create(&entity.ScheduleConfig{SignInHour: 8, SignInMinute: 0, TargetChannelID: "C123"}); err != nil {
			return err
		}
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	cfg, err := dm.Schedule().Get()
	require.NoError(t, err)
	assert.Nil(t, cfg, "rolled back config should not be visible")
}
