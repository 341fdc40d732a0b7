package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lac-hong-legacy/rehab_api/shared/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestDB opens a migrated in-memory sqlite database private to the test.
// A single connection keeps every query on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := OpenDatabase(DriverSqlite, dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

// testServices wires the domain services the way the runtime does, with a
// mock clock and the cheapest bcrypt cost.
type testServices struct {
	db        *gorm.DB
	dbSvc     *DatabaseService
	clock     *mocks.MockClock
	passcodes *PasscodeService
	quota     *SessionQuotaService
	sessions  *GameSessionService
	exercises *ExerciseService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := newTestDB(t)
	dbSvc := NewDatabaseService(db)
	clock := mocks.NewMockClock(testEpoch)
	passcodes := NewPasscodeService(dbSvc, bcrypt.MinCost)
	quota := NewSessionQuotaService(dbSvc, clock, DefaultSessionQuota, DefaultSessionQuotaWindow)

	return &testServices{
		db:        db,
		dbSvc:     dbSvc,
		clock:     clock,
		passcodes: passcodes,
		quota:     quota,
		sessions:  NewGameSessionService(dbSvc, passcodes, quota, clock),
		exercises: NewExerciseService(dbSvc),
	}
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	return count
}
