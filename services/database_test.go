package services

import (
	stdctx "context"
	"errors"
	"testing"

	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/lac-hong-legacy/rehab_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTransactionCommits(t *testing.T) {
	db := newTestDB(t)
	dbSvc := NewDatabaseService(db)

	err := dbSvc.Transaction(stdctx.Background(), func(tx *gorm.DB) error {
		return tx.Create(&model.Player{FirstName: "Ann", LastName: "Lee", PasscodeHash: "x"}).Error
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), countRows(t, db, "players"))
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	dbSvc := NewDatabaseService(db)
	boom := errors.New("boom")

	err := dbSvc.Transaction(stdctx.Background(), func(tx *gorm.DB) error {
		if err := tx.Create(&model.Player{FirstName: "Ann", LastName: "Lee", PasscodeHash: "x"}).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, countRows(t, db, "players"))
}

func TestTransactionRollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	dbSvc := NewDatabaseService(db)

	assert.Panics(t, func() {
		_ = dbSvc.Transaction(stdctx.Background(), func(tx *gorm.DB) error {
			tx.Create(&model.Player{FirstName: "Ann", LastName: "Lee", PasscodeHash: "x"})
			panic("boom")
		})
	})
	assert.Zero(t, countRows(t, db, "players"))
}

func TestTransactionCancelledContext(t *testing.T) {
	db := newTestDB(t)
	dbSvc := NewDatabaseService(db)

	ctx, cancel := stdctx.WithCancel(stdctx.Background())
	cancel()

	err := dbSvc.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(&model.Player{FirstName: "Ann", LastName: "Lee", PasscodeHash: "x"}).Error
	})
	require.Error(t, err)
	assert.Zero(t, countRows(t, db, "players"))
}

func TestHandleError(t *testing.T) {
	dbSvc := NewDatabaseService(nil)

	assert.NoError(t, dbSvc.HandleError(nil, "Player not found"))

	notFound := dbSvc.HandleError(gorm.ErrRecordNotFound, "Player not found")
	require.ErrorIs(t, notFound, shared.ErrNotFound)
	appErr, ok := shared.GetAppError(notFound)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "Player not found", appErr.Message)

	storage := dbSvc.HandleError(gorm.ErrDuplicatedKey, "Player not found")
	require.ErrorIs(t, storage, shared.ErrStorage)
	assert.ErrorIs(t, storage, gorm.ErrDuplicatedKey)
	appErr, _ = shared.GetAppError(storage)
	assert.Equal(t, "Database error", appErr.Message)

	unauthorized := shared.NewUnauthorizedError(nil, "Invalid passcode")
	assert.Same(t, unauthorized, dbSvc.HandleError(unauthorized, "Player not found"))
}

func TestDuplicateExerciseResultIsStorageError(t *testing.T) {
	svcs := newTestServices(t)
	ctx := stdctx.Background()

	playerID, err := svcs.passcodes.Register(ctx, "Ann", "Lee", 4321)
	require.NoError(t, err)
	session, err := svcs.sessions.CreateSession(ctx, playerID, 4321)
	require.NoError(t, err)

	require.NoError(t, svcs.exercises.WriteResult(ctx, session.SessionID, &model.Balloons{PlayOrPass: true}))
	err = svcs.exercises.WriteResult(ctx, session.SessionID, &model.Balloons{PlayOrPass: true})
	assert.ErrorIs(t, err, shared.ErrStorage)
	assert.Equal(t, int64(1), countRows(t, svcs.db, "balloons"))
}
