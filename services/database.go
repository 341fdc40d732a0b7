package services

import (
	stdctx "context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/lac-hong-legacy/rehab_api/model"
	"github.com/lac-hong-legacy/rehab_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// DatabaseService is the only owner of the persistent representation. Other
// services reach rows through Transaction and the repositories.
type DatabaseService struct {
	context.DefaultService
	db *gorm.DB

	driver     string
	dsn        string
	maxRetries int
}

const DATABASE_SVC = "database_svc"

func (ds DatabaseService) Id() string {
	return DATABASE_SVC
}

// NewDatabaseService wraps an already opened connection. Used by tests and
// the seed command, which do not go through the service registry.
func NewDatabaseService(db *gorm.DB) *DatabaseService {
	return &DatabaseService{db: db}
}

// Db Access to raw gorm db
func (ds *DatabaseService) Db() *gorm.DB {
	return ds.db
}

func (ds *DatabaseService) Configure(ctx *context.Context) error {
	ds.driver = strings.ToLower(os.Getenv("DB_DRIVER"))
	if ds.driver == "" {
		ds.driver = DriverPostgres
	}
	if ds.driver != DriverPostgres && ds.driver != DriverSqlite {
		return fmt.Errorf("unsupported DB_DRIVER %q", ds.driver)
	}

	ds.maxRetries = 10
	if v := os.Getenv("DB_CONNECT_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid DB_CONNECT_RETRIES %q", v)
		}
		ds.maxRetries = n
	}

	// The connection string is resolved once, before anything serves traffic.
	paramSvc, ok := ctx.Service(PARAMETER_STORE_SVC).(*ParameterStoreService)
	if !ok {
		return errors.New("parameter store service not registered")
	}
	ds.dsn = paramSvc.DatabaseURL()

	return ds.DefaultService.Configure(ctx)
}

// Start opens the connection, retrying with capped exponential backoff, and
// migrates every table.
func (ds *DatabaseService) Start() (err error) {
	retryDelay := time.Second

	for attempt := 1; attempt <= ds.maxRetries; attempt++ {
		log.WithField("attempt", attempt).Infof("Connecting to %s database", ds.driver)

		ds.db, err = OpenDatabase(ds.driver, ds.dsn)
		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == ds.maxRetries {
			log.WithError(err).Errorf("Failed to connect to database after %d attempts", ds.maxRetries)
			return err
		}

		log.WithError(err).Warnf("Database connection failed. Retrying in %v", retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	if err = Migrate(ds.db); err != nil {
		log.WithError(err).Error("Failed to migrate database")
		return err
	}

	log.Info("Database connected and migrated successfully")
	return nil
}

func (ds *DatabaseService) Shutdown() {
	if ds.db == nil {
		return
	}
	sqlDB, err := ds.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// OpenDatabase opens a gorm connection for the given driver with logs routed
// through logrus.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSqlite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(200 * time.Millisecond),
		TranslateError: true,
	})
}

// Migrate creates any missing table, column or index. Safe to run on every
// start.
func Migrate(db *gorm.DB) error {
	models := []interface{}{
		&model.Player{},
		&model.GameSession{},
	}
	models = append(models, model.ExerciseModels()...)

	return db.AutoMigrate(models...)
}

// Transaction runs fn in a transaction bound to ctx. It commits when fn
// returns nil and rolls back on error, panic or cancellation of ctx.
func (ds *DatabaseService) Transaction(ctx stdctx.Context, fn func(tx *gorm.DB) error) error {
	return ds.db.WithContext(ctx).Transaction(fn)
}

// WithContext returns a session for read-only work outside a transaction.
func (ds *DatabaseService) WithContext(ctx stdctx.Context) *gorm.DB {
	return ds.db.WithContext(ctx)
}

// HandleError translates a storage failure into an AppError. Errors that are
// already AppErrors pass through untouched, so it is safe to call on the
// result of Transaction.
func (ds *DatabaseService) HandleError(err error, notFoundMessage string) error {
	if err == nil {
		return nil
	}

	if _, ok := shared.GetAppError(err); ok {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError(err, notFoundMessage)
	}

	var errorType string
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		errorType = "UNIQUE_CONSTRAINT"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		errorType = "FOREIGN_KEY_VIOLATION"
	case errors.Is(err, gorm.ErrInvalidTransaction):
		errorType = "TRANSACTION_ERROR"
	case errors.Is(err, stdctx.Canceled), errors.Is(err, stdctx.DeadlineExceeded):
		errorType = "REQUEST_ABORTED"
	case strings.Contains(err.Error(), "connection refused"):
		errorType = "DATABASE_CONNECTION_ERROR"
	case strings.Contains(err.Error(), "does not exist"), strings.Contains(err.Error(), "no such table"):
		errorType = "SCHEMA_ERROR"
	default:
		errorType = "INTERNAL_ERROR"
	}

	log.WithFields(log.Fields{
		"error_type": errorType,
		"error":      err.Error(),
	}).Error("Database error occurred")

	return shared.NewInternalError(err, "Database error")
}
